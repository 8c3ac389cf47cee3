package surface

import (
	"encoding/json"
	"io"

	"github.com/veritext/veritext/pkg/detect"
)

// JSONRenderer marshals a detection Result to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *detect.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
