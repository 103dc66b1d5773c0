// Command eventify is the process entry point: it reads configuration,
// opens the persistence pool and queue client, fans out one Manager per
// enabled network, and awaits shutdown, per §2/§6. Grounded on the
// teacher's cmd/synnergy/main.go root-command shape.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "eventify",
		Short: "Multi-network blockchain ingestion and propagation pipeline",
	}
	root.AddCommand(runCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
