// Package surface defines output rendering for veritext detection results.
// Implementations handle different output targets: terminal and JSON.
package surface

import (
	"io"

	"github.com/veritext/veritext/pkg/detect"
)

// Renderer produces formatted output from a detection Result.
type Renderer interface {
	// Render writes the formatted result to the writer.
	Render(w io.Writer, result *detect.Result) error
}
