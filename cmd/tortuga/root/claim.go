package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/engine"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/ui"
)

func newClaimCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "claim <action>",
		Short: "Claim KI for an action (walk, mobility, sleep, food, …)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("action type is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			actionType, err := catalog.ParseActionType(args[0])
			if err != nil {
				return err
			}

			svc, today, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ClaimAction(ctx, engine.ClaimInput{DateISO: today, Type: actionType, Note: note})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case res.KiAdded > 0:
				fmt.Fprintln(out, ui.Good.Render(ui.IconKi+" "+res.Message))
			case res.Capped:
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+res.Message))
			default:
				fmt.Fprintln(out, ui.Muted.Render(res.Message))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "optional note stored with the ledger entry")

	return cmd
}
