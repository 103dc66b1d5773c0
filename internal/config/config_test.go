package config

import (
	"testing"

	"github.com/eventify-go/eventify/internal/fixture"
)

func TestLoadFromTOMLFile(t *testing.T) {
	sb, err := fixture.NewSandbox()
	if err != nil {
		t.Fatalf("NewSandbox: %v", err)
	}
	defer sb.Cleanup()

	toml := []byte(`
database_url = "postgres://u:p@localhost:5432/eventify_test"
queue_url = "redis://localhost:6379/1"
collect = ["blocks", "logs"]

[network.ethereum]
node_url = "wss://eth.example/ws"

[logging]
level = "debug"
`)
	if err := sb.WriteFile("eventify.toml", toml, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(sb.Path("eventify.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "postgres://u:p@localhost:5432/eventify_test" {
		t.Fatalf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.Network["ethereum"].NodeURL != "wss://eth.example/ws" {
		t.Fatalf("network.ethereum.node_url = %q", cfg.Network["ethereum"].NodeURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging.level = %q", cfg.Logging.Level)
	}
}

func TestEnabledNetworksSkipsBlankNodeURL(t *testing.T) {
	cfg := &Config{
		Network: map[string]NetworkConfig{
			"ethereum": {NodeURL: "wss://eth.example/ws"},
			"polygon":  {NodeURL: ""},
		},
	}

	tags, err := cfg.EnabledNetworks()
	if err != nil {
		t.Fatalf("EnabledNetworks: %v", err)
	}
	if len(tags) != 1 || tags[0].String() != "ethereum" {
		t.Fatalf("tags = %v, want [ethereum]", tags)
	}
}

func TestEnabledNetworksRejectsUnknownName(t *testing.T) {
	cfg := &Config{
		Network: map[string]NetworkConfig{
			"solana": {NodeURL: "wss://solana.example/ws"},
		},
	}
	if _, err := cfg.EnabledNetworks(); err == nil {
		t.Fatal("an unrecognised network name must be rejected, the set is closed")
	}
}

func TestCollectSet(t *testing.T) {
	cfg := &Config{Collect: []string{"blocks", "logs"}}
	blocks, txs, logs := cfg.CollectSet()
	if !blocks || txs || !logs {
		t.Fatalf("got blocks=%v txs=%v logs=%v, want true/false/true", blocks, txs, logs)
	}
}
