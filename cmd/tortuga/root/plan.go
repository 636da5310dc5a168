package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/ui"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show today's generated workout plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, today, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			plan, err := svc.TodayPlan(ctx, today)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconKi, plan.Name))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s · ~%d min · %s", plan.DateISO, plan.EstimatedMinutes, plan.TemplateID)))
			for _, note := range plan.Notes {
				fmt.Fprintf(out, "%s %s\n", ui.Muted.Render("·"), note)
			}
			fmt.Fprintln(out, "")

			for _, block := range plan.Blocks {
				fmt.Fprintln(out, ui.H2.Render(block.Name))
				for _, e := range block.Exercises {
					rest := ""
					if e.RestSec > 0 {
						rest = ui.Muted.Render(fmt.Sprintf(" (descanso %ds)", e.RestSec))
					}
					if e.HasReps() {
						fmt.Fprintf(out, "- %s — %d×%d%s\n", e.Name, e.Sets, e.Reps, rest)
					} else {
						fmt.Fprintf(out, "- %s — %d×%ds%s\n", e.Name, e.Sets, e.TimeSec, rest)
					}
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	return cmd
}
