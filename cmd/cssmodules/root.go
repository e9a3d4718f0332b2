package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssmodules",
	Short: "CSS Modules token locator",
	Long: `Discover the externally visible tokens of a CSS Modules stylesheet:
class selectors and @value bindings, traced through @import and
@value ... from references.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssmodules.yaml", "Config file path")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
