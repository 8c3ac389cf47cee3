// Package scoring implements the veritext rule-based detection engine.
// It combines extracted text features into an AI-generation probability
// via an ordered table of weighted adjustment rules, and produces the
// human-readable rationale for the verdict.
package scoring

// ScoreResult is the output of scoring a FeatureSet. Immutable once
// computed; the two probabilities always sum to 1.
type ScoreResult struct {
	AIProbability    float64  `json:"ai_probability"`
	HumanProbability float64  `json:"human_probability"`
	Trace            []string `json:"trace"` // one entry per rule that fired, in rule order
}
