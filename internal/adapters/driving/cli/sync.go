package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

var syncCmd = &cobra.Command{
	Use:   "sync [entity]",
	Short: "Mirror upstream records into the local store",
	Long: `Runs a one-shot mirror sync. Without an argument every entity is
synced in order: locations, staff, clients, class_descriptions, classes.
Pass an entity name to sync just that one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	var out any
	if len(args) == 1 {
		result, err := a.sync.SyncEntity(ctx, domain.SyncEntity(args[0]))
		if err != nil {
			return err
		}
		out = result
	} else {
		run, err := a.sync.SyncAll(ctx)
		if err != nil {
			return err
		}
		out = run
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
