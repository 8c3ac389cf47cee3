package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/veritext/veritext/pkg/detect"
)

// TerminalRenderer renders a detection Result as colored terminal output.
type TerminalRenderer struct {
	// ShowTrace includes the per-rule score adjustments.
	ShowTrace bool
}

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"
)

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, result *detect.Result) error {
	verdict, vc := "Human-written", colorGreen
	if result.IsAIGenerated {
		verdict, vc = "AI-generated", colorRed
	}

	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Veritext: %s (%.1f%% confidence)",
			colored(verdict, vc), result.Confidence*100)))

	fmt.Fprintf(w, "Probabilities: AI %.2f / Human %.2f\n",
		result.AIProbability, result.HumanProbability)

	fs := result.Features
	fmt.Fprintf(w, "Analyzed: %d words / %d sentences / lexical diversity %.2f / avg sentence length %.1f\n\n",
		fs.WordCount, fs.SentenceCount, fs.LexicalDiversity, fs.AvgSentenceLength)

	if r.ShowTrace {
		if len(result.Trace) > 0 {
			fmt.Fprintln(w, "Signals:")
			for _, note := range result.Trace {
				fmt.Fprintf(w, "  %s\n", dim(note))
			}
		} else {
			fmt.Fprintln(w, "No rules fired.")
		}
		fmt.Fprintln(w)
	}

	for _, line := range wrapText(result.Explanation, 78) {
		fmt.Fprintln(w, line)
	}

	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
