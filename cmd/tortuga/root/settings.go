package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.Settings(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Settings"))
			fmt.Fprintln(out, ui.LabelValue("Daily KI cap", st.DailyKiCap))
			fmt.Fprintln(out, ui.LabelValue("Difficulty", st.Difficulty))
			fmt.Fprintln(out, ui.LabelValue("Reduce motion", st.ReduceMotion))
			return nil
		},
	}

	cmd.AddCommand(newSettingsCapCmd(), newSettingsDifficultyCmd(), newSettingsReduceMotionCmd())
	return cmd
}

func newSettingsCapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cap <10-200>",
		Short: "Set the daily KI cap (clamped to [10,200])",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("cap value is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("cap must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			value, _ := strconv.Atoi(args[0])

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.SetDailyKiCap(ctx, value); err != nil {
				return err
			}
			st, err := svc.Settings(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Daily KI cap set to %d", ui.IconDone, st.DailyKiCap)))
			return nil
		},
	}
}

func newSettingsDifficultyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "difficulty <easy|normal|hard>",
		Short: "Set the training difficulty",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("difficulty is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := catalog.ParseDifficulty(args[0])
			if err != nil {
				return err
			}

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.SetDifficulty(ctx, d); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Difficulty set to %s", ui.IconDone, d)))
			return nil
		},
	}
}

func newSettingsReduceMotionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce-motion <on|off>",
		Short: "Toggle reduced motion in the UI",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				return errors.New("expected on or off")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			enabled := args[0] == "on"
			if err := svc.SetReduceMotion(ctx, enabled); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Reduce motion: %s", ui.IconDone, args[0])))
			return nil
		},
	}
}
