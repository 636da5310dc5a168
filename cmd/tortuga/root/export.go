package root

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/ui"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all data as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, today, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := svc.Export(ctx)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal export: %w", err)
			}

			path := outPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = fmt.Sprintf("tortuga-export-%s.json", today)
			}
			if path == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Exported to "+path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file ('-' for stdout)")

	return cmd
}
