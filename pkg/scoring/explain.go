package scoring

import (
	"fmt"
	"strings"

	"github.com/veritext/veritext/pkg/textfeat"
)

// The explanation thresholds are a separate table from the scoring rules
// and diverge from them in places: the AI branch cites high diversity above
// 0.75 where the scorer boosts above 0.80, and the human branch cites word
// repetition below 0.65 where the scorer credits below 0.60. Inherited
// behavior, kept as-is rather than reconciled with the rule table.

// clause is one candidate sentence in an explanation, gated on features.
type clause struct {
	when func(*textfeat.FeatureSet) bool
	text string
}

var aiClauses = []clause{
	{func(fs *textfeat.FeatureSet) bool { return fs.AIPhraseCount > 0 },
		"Contains typical AI assistant phrases"},
	{func(fs *textfeat.FeatureSet) bool { return fs.FormalTransitionCount > 2 },
		"Uses formal transitions like 'furthermore' and 'moreover'"},
	{func(fs *textfeat.FeatureSet) bool { return fs.LexicalDiversity > 0.75 },
		"High vocabulary diversity typical of AI"},
	{func(fs *textfeat.FeatureSet) bool { return fs.AvgSentenceLength > 25 },
		"Consistently long, complex sentences"},
	{func(fs *textfeat.FeatureSet) bool { return fs.SentenceLengthVariance < 10 && fs.SentenceCount > 2 },
		"Very uniform sentence structure"},
	{func(fs *textfeat.FeatureSet) bool { return fs.ContractionCount == 0 && fs.WordCount > 50 },
		"Formal tone with no contractions"},
}

const aiFallback = "Text structure and patterns suggest AI generation"

var humanClauses = []clause{
	{func(fs *textfeat.FeatureSet) bool { return fs.SlangCount > 0 },
		"Uses informal language and slang"},
	{func(fs *textfeat.FeatureSet) bool { return fs.RepeatedChars > 0 },
		"Contains emotional expressions with repeated characters"},
	{func(fs *textfeat.FeatureSet) bool { return fs.ExclamationCount > 0 || fs.QuestionCount > 1 },
		"Varied punctuation suggests human writing"},
	{func(fs *textfeat.FeatureSet) bool { return fs.ContractionCount > 0 },
		"Natural use of contractions"},
	{func(fs *textfeat.FeatureSet) bool { return fs.SentenceLengthVariance > 30 },
		"Sentence lengths vary naturally"},
	{func(fs *textfeat.FeatureSet) bool { return fs.LexicalDiversity < 0.65 },
		"Natural word repetition patterns"},
}

const humanFallback = "Writing style and patterns suggest human authorship"

// Explain produces the rationale string for a verdict: every fired clause
// from the branch matching the label, joined with ". ", followed by the
// confidence percentage. If no clause fires the branch's generic fallback
// is used.
func Explain(isAI bool, confidence float64, fs *textfeat.FeatureSet) string {
	table, fallback := humanClauses, humanFallback
	if isAI {
		table, fallback = aiClauses, aiFallback
	}

	var parts []string
	for _, c := range table {
		if c.when(fs) {
			parts = append(parts, c.text)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, fallback)
	}

	return fmt.Sprintf("%s. Confidence: %.1f%%", strings.Join(parts, ". "), confidence*100)
}
