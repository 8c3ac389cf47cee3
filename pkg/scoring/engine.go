package scoring

import (
	"fmt"
	"math"

	"github.com/veritext/veritext/pkg/textfeat"
)

// Rule is one entry in the ordered scoring table. Eval receives the
// running score and returns the adjusted score, plus a trace note when the
// rule fires. Most rules are additive; the short-text rule rescales the
// score accumulated before it.
type Rule struct {
	Key     string // machine key: "ai_phrases"
	Name    string // human name: "AI assistant phrases"
	Summary string // firing condition, for audit output
	Eval    func(fs *textfeat.FeatureSet, score float64) (next float64, note string, fired bool)
}

// Engine evaluates an ordered rule table over a FeatureSet.
type Engine struct {
	rules []Rule
}

// NewEngine creates a scoring engine with the given rules, evaluated in
// the order given.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the engine's rule table in evaluation order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Score runs every rule in order against the FeatureSet, starting from a
// neutral score, and clamps the final probability to
// [MinProbability, MaxProbability].
func (e *Engine) Score(fs *textfeat.FeatureSet) (*ScoreResult, error) {
	if fs == nil {
		return nil, fmt.Errorf("feature set is nil")
	}

	score := NeutralScore
	var trace []string

	for _, r := range e.rules {
		next, note, fired := r.Eval(fs, score)
		if fired {
			trace = append(trace, note)
		}
		score = next
	}

	score = math.Max(MinProbability, math.Min(MaxProbability, score))

	return &ScoreResult{
		AIProbability:    score,
		HumanProbability: 1 - score,
		Trace:            trace,
	}, nil
}
