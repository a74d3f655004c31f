package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pixel2html/p2h/internal/ui"
	"github.com/pixel2html/p2h/pkg/version"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "p2h",
		Short: "Pixel2HTML front-end boilerplate generator",
		Long: `p2h scaffolds a static front-end project: a directory skeleton,
gulp and npm configuration, and a bower.json whose dependencies follow
the chosen CSS preprocessor, framework and jQuery modules.`,
		Version:           version.GetVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: applyGlobalFlags,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("p2h %s\n", version.GetVersion()))

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colors and animations")

	cmd.AddCommand(newInitCmd(), newDepsCmd(), newVersionCmd())
	return cmd
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	if err := InitDependencies(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), deps.Theme.Error().Render("Error: "+err.Error()))
	}
	return err
}

// applyGlobalFlags applies the persistent flags to the shared dependencies.
func applyGlobalFlags(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return errors.New("dependencies not initialized")
	}
	if getBoolFlag(cmd, "verbose") {
		deps.LogLevel.Set(slog.LevelDebug)
	}
	if getBoolFlag(cmd, "no-color") && !deps.Theme.NoColor {
		deps.Theme = ui.NewTheme(true)
	}
	return nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
