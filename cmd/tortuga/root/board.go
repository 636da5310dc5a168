package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, today, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunDashboard(ctx, svc, today, cmd.OutOrStdout())
		},
	}
}
