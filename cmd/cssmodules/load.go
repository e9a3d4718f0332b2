package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssmodules"
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Load a stylesheet and print the tokens it exposes",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.Bool("json", false, "Print machine-readable JSON instead of a table")
}

type loadJSONResult struct {
	Dependencies []string           `json:"dependencies"`
	Tokens       []cssmodules.Token `json:"tokens"`
}

func runLoad(cmd *cobra.Command, args []string) error {
	useColors := getBoolWithFallback("color", "color", false)
	quiet := getBoolWithFallback("quiet", "quiet", false)
	asJSON := getBoolWithFallback("json", "load.json", false)

	loc := cssmodules.New(cssmodules.Options{})
	result, err := loc.Load(args[0])
	if err != nil {
		reportError(err, useColors)
		return err
	}

	if quiet {
		return nil
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(loadJSONResult{Dependencies: result.Dependencies, Tokens: result.Tokens})
	}

	fmt.Println(renderStyle(styleCyan, "Dependencies", useColors))
	for _, dep := range result.Dependencies {
		fmt.Printf("  %s\n", dep)
	}

	fmt.Println(renderStyle(styleCyan, "Tokens", useColors))
	for _, tok := range result.Tokens {
		label := tok.Name
		if tok.ImportedName != "" {
			label = fmt.Sprintf("%s (as %s)", tok.ImportedName, tok.Name)
		}
		locStr := renderStyle(styleGray, fmt.Sprintf("%s:%d:%d", tok.OriginalLocation.FilePath, tok.OriginalLocation.Line, tok.OriginalLocation.Column), useColors)
		fmt.Printf("  %-30s %s\n", label, locStr)
	}

	return nil
}
