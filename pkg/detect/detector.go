// Package detect composes feature extraction, scoring, and explanation
// into a single detection call, plus the input gates the service boundary
// enforces before invoking it.
package detect

import (
	"math"

	"github.com/veritext/veritext/pkg/scoring"
	"github.com/veritext/veritext/pkg/textfeat"
)

// Result is the externally visible outcome of one detection. Created fresh
// per call and discarded after the response; it has no identity beyond
// that.
type Result struct {
	IsAIGenerated    bool                 `json:"is_ai_generated"`
	Confidence       float64              `json:"confidence"`
	HumanProbability float64              `json:"human_probability"`
	AIProbability    float64              `json:"ai_probability"`
	Explanation      string               `json:"explanation"`
	Features         *textfeat.FeatureSet `json:"features"`

	// Trace carries the per-rule adjustments for diagnostic rendering.
	// It is not part of the API response.
	Trace []string `json:"-"`
}

// Detector runs the extract -> score -> explain pipeline. It holds no
// mutable state and is safe for concurrent use.
type Detector struct {
	engine *scoring.Engine
}

// New creates a Detector with the default rule table.
func New() *Detector {
	return &Detector{engine: scoring.NewEngine(scoring.DefaultRules()...)}
}

// NewWithEngine creates a Detector scoring with the given engine.
func NewWithEngine(engine *scoring.Engine) *Detector {
	return &Detector{engine: engine}
}

// Detect classifies the given trimmed text. The text is assumed to have
// passed ValidateInput; Detect itself is total over any non-empty string.
func (d *Detector) Detect(text string) (*Result, error) {
	fs := textfeat.Extract(text)

	sr, err := d.engine.Score(fs)
	if err != nil {
		return nil, err
	}

	isAI := sr.AIProbability > 0.5
	confidence := math.Max(sr.AIProbability, sr.HumanProbability)

	return &Result{
		IsAIGenerated:    isAI,
		Confidence:       confidence,
		HumanProbability: sr.HumanProbability,
		AIProbability:    sr.AIProbability,
		Explanation:      scoring.Explain(isAI, confidence, fs),
		Features:         fs,
		Trace:            sr.Trace,
	}, nil
}
