// Package main provides the veritext CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "veritext",
		Short: "Rule-based AI-generated text detection",
		Long: `Veritext extracts lexical and stylistic features from text and scores
them against a weighted rule table to estimate whether the text was
AI-generated.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newRulesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
