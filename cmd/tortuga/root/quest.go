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

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "List or complete daily quests",
	}
	cmd.AddCommand(newQuestListCmd(), newQuestDoneCmd())
	return cmd
}

func newQuestListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show today's quests and completion state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, today, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			quests, err := svc.TodayQuestStatus(ctx, today)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quests — "+today))
			for _, q := range quests {
				reward := ""
				if q.Def.RewardKi > 0 {
					reward = ui.Gold.Render(fmt.Sprintf(" +%d KI", q.Def.RewardKi))
				}
				fmt.Fprintf(out, "%s %s%s\n", ui.CheckMark(q.Completed), q.Def.Title, reward)
				fmt.Fprintf(out, "   %s %s\n", ui.Muted.Render(q.Def.QuestID), ui.Muted.Render(q.Def.Description))
			}
			return nil
		},
	}
}

func newQuestDoneCmd() *cobra.Command {
	var action string

	cmd := &cobra.Command{
		Use:   "done <quest_id>",
		Short: "Mark a quest as completed today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var override catalog.ActionType
			if action != "" {
				parsed, err := catalog.ParseActionType(action)
				if err != nil {
					return err
				}
				override = parsed
			}

			svc, today, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteQuest(ctx, engine.QuestInput{DateISO: today, QuestID: args[0], ActionOverride: override})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.KiAdded > 0 {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" "+res.Message))
			} else {
				fmt.Fprintln(out, ui.Muted.Render(res.Message))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&action, "action", "a", "", "for side_walk_or_mobility: walk or mobility")

	return cmd
}
