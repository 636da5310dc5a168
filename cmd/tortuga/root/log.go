package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/ui"
)

func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent KI ledger entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			actions, err := svc.RecentActions(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "KI ledger"))
			if len(actions) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Sin acciones todavía."))
				return nil
			}
			for _, a := range actions {
				note := ""
				if a.Note != "" {
					note = ui.Muted.Render(" · " + a.Note)
				}
				fmt.Fprintf(out, "%s  %s  %s%s\n",
					ui.Muted.Render(a.Date),
					ui.Gold.Render(fmt.Sprintf("%+d KI", a.KiDelta)),
					strings.ReplaceAll(a.Type, "_", " "),
					note,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "number of entries to show")

	return cmd
}
