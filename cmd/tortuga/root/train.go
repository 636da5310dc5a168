package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/engine"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/ui"
)

func newTrainCmd() *cobra.Command {
	var (
		modeFlag     string
		durationSec  int
		templateFlag string
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Finalize today's workout and claim its KI",
		Long:  "Records the session (mode: quick, full, capsule_30, capsule_60), claims the workout KI once per day, updates the streak, and checks off the main quest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			mode, err := catalog.ParseWorkoutMode(modeFlag)
			if err != nil {
				return err
			}

			svc, today, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			templateID := templateFlag
			if templateID == "" {
				switch mode {
				case catalog.ModeCapsule30:
					templateID = catalog.CapsuleTemplate30
				case catalog.ModeCapsule60:
					templateID = catalog.CapsuleTemplate60
				default:
					plan, err := svc.TodayPlan(ctx, today)
					if err != nil {
						return err
					}
					templateID = plan.TemplateID
				}
			}

			// The main quest is checked off by the act of training; its ki
			// comes only from the workout claim below.
			if _, err := svc.CompleteQuest(ctx, engine.QuestInput{DateISO: today, QuestID: catalog.QuestMainWorkout}); err != nil {
				return err
			}

			res, err := svc.CompleteWorkout(ctx, engine.WorkoutInput{
				DateISO:     today,
				TemplateID:  templateID,
				Mode:        mode,
				DurationSec: durationSec,
			})
			if err != nil {
				return err
			}

			icon := ui.IconDone
			if mode == catalog.ModeCapsule30 || mode == catalog.ModeCapsule60 {
				icon = ui.IconCapsule
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Good.Render(icon+" "+res.Message))
			fmt.Fprintln(out, ui.LabelValue(ui.IconStreak+" Streak", fmt.Sprintf("%d días", res.Streak)))
			if res.BonusKi > 0 {
				fmt.Fprintf(out, "%s +%d KI\n", ui.BadgeBonus, res.BonusKi)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "full", "workout mode: quick, full, capsule_30, capsule_60")
	cmd.Flags().IntVarP(&durationSec, "duration", "d", 0, "session duration in seconds")
	cmd.Flags().StringVarP(&templateFlag, "template", "t", "", "override the logged template id")

	return cmd
}
