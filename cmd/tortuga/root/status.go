package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/engine"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show ki, transformation progress, streak, and today's quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, today, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Player(ctx)
			if err != nil {
				return err
			}
			st, err := svc.Settings(ctx)
			if err != nil {
				return err
			}
			prog := engine.ProgressToNext(p.KiTotal)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTurtle, "Escuela de la Tortuga — "+today))
			fmt.Fprintln(out, ui.LabelValue("Transformación", ui.Gold.Render(prog.Current.Label())))
			fmt.Fprintln(out, ui.LabelValue("KI total", p.KiTotal))
			if prog.Next != nil {
				fmt.Fprintln(out, ui.LabelValue("Siguiente", fmt.Sprintf("%s (a %d KI, faltan %d)", prog.Next.Label(), prog.Next.MinKi, prog.Remaining)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Siguiente", ui.Gold.Render("máxima transformación alcanzada")))
			}
			fmt.Fprintln(out, ui.LabelValue("KI hoy", fmt.Sprintf("%d / %d (cap)", p.KiToday, st.DailyKiCap)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconStreak+" Streak", fmt.Sprintf("%d días", p.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Dificultad", st.Difficulty))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconQuest+" Quests del día"))
			quests, err := svc.TodayQuestStatus(ctx, today)
			if err != nil {
				return err
			}
			for _, q := range quests {
				fmt.Fprintf(out, "%s %s %s\n", ui.CheckMark(q.Completed), q.Def.Title, ui.Muted.Render(q.Def.Description))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconSparkle+" Transformaciones desbloqueadas"))
			for _, t := range engine.UnlockedTransformations(p.KiTotal) {
				fmt.Fprintf(out, "- %s %s\n", t.Label(), ui.Muted.Render(fmt.Sprintf("(%d KI)", t.MinKi)))
			}
			return nil
		},
	}

	return cmd
}
