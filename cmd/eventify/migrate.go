package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/eventify-go/eventify/internal/config"
)

//go:embed migrations/*/*.sql
var migrationFS embed.FS

func migrateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for every configured network and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the TOML configuration file")
	return cmd
}

// runMigrate applies every "migrations/<network>/*.sql" file, in filename
// order, for each network with a configured node_url, then returns. This is
// the only_migrations path named in §6: the process exits without starting
// any collector.
func runMigrate(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	tags, err := cfg.EnabledNetworks()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("migrate: connect: %w", err)
	}
	defer pool.Close()

	for _, tag := range tags {
		if err := applyNetworkMigrations(ctx, pool, tag.Schema()); err != nil {
			return fmt.Errorf("migrate: network %s: %w", tag.String(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migrated %s\n", tag.String())
	}
	return nil
}

func applyNetworkMigrations(ctx context.Context, pool *pgxpool.Pool, schema string) error {
	dir := "migrations/" + schema
	entries, err := fs.ReadDir(migrationFS, dir)
	if err != nil {
		if _, statErr := fs.Stat(migrationFS, dir); statErr != nil {
			return nil // no migrations shipped for this network
		}
		return err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if _, err := pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+schema); err != nil {
		return err
	}

	for _, name := range names {
		sqlBytes, err := migrationFS.ReadFile(dir + "/" + name)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
