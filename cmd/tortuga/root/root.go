package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "tortuga",
	Short:         "Escuela de la Tortuga — local-first gamified training tracker",
	Long:          "Tortuga turns workouts and daily quests into KI, unlocks transformations, and generates the day's training plan. Everything stays in a local sqlite file.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newPlanCmd(),
		newTrainCmd(),
		newClaimCmd(),
		newQuestCmd(),
		newLogCmd(),
		newSettingsCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
