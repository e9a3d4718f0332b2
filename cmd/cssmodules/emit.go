package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssmodules"
	"github.com/yacobolo/cssmodules/dts"
)

var emitCmd = &cobra.Command{
	Use:   "emit <file>",
	Short: "Emit a TypeScript declaration file for a stylesheet",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runEmit,
}

func init() {
	f := emitCmd.Flags()
	f.String("out", "", "Output path for the .d.ts file (default: <file>.d.ts)")
	f.Bool("named", false, "Emit named exports instead of a single default export")
}

func runEmit(cmd *cobra.Command, args []string) error {
	useColors := getBoolWithFallback("color", "color", false)
	out := getStringWithFallback("out", "emit.out", args[0]+".d.ts")
	named := getBoolWithFallback("named", "emit.named", false)

	loc := cssmodules.New(cssmodules.Options{})
	result, err := loc.Load(args[0])
	if err != nil {
		reportError(err, useColors)
		return err
	}

	if len(result.Tokens) == 0 {
		fmt.Println(renderStyle(styleYellow, "warning:", useColors), "no tokens discovered, emitting an empty declaration")
	}

	content := dts.Format(result, dts.Options{NamedExports: named})
	if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Printf("Wrote %s (%d tokens)\n", out, len(result.Tokens))
	}

	return nil
}
