package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/veritext/veritext/internal/loader"
	"github.com/veritext/veritext/pkg/detect"
	"github.com/veritext/veritext/pkg/surface"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		outputFmt string
		showTrace bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Classify a text as AI-generated or human-written",
		Long: `Reads text from a file (or stdin with "-"), extracts lexical and stylistic
features, and scores them against the detection rule table. PDF and DOCX
files are converted to plain text first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], outputFmt, showTrace)
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "Show per-rule score adjustments")

	return cmd
}

func runAnalyze(path, outputFmt string, showTrace bool) error {
	text, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}

	text = strings.TrimSpace(text)
	if err := detect.ValidateInput(text); err != nil {
		return err
	}

	result, err := detect.New().Detect(text)
	if err != nil {
		return err
	}

	var renderer surface.Renderer
	switch outputFmt {
	case "json":
		renderer = &surface.JSONRenderer{}
	case "text":
		renderer = &surface.TerminalRenderer{ShowTrace: showTrace}
	default:
		return fmt.Errorf("unknown output format: %s", outputFmt)
	}

	return renderer.Render(os.Stdout, result)
}
