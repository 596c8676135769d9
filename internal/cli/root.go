package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "worqlo-deploy",
	Short: "Deployment bootstrap utilities for self-hosted installations",
	Long: `Utilities run once after a deployment's schema migrations:
seeding the reference tables the application needs before serving traffic,
and materializing the tokenizer vocabulary cache for the API image.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns its error; the entrypoint maps
// errors to exit codes.
func Execute() error {
	return rootCmd.Execute()
}
