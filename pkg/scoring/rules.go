package scoring

import (
	"fmt"
	"math"

	"github.com/veritext/veritext/pkg/textfeat"
)

// adjust builds a fixed-delta rule: when the predicate holds, delta is
// added to the running score and a "<label>: +0.15" style note is traced.
func adjust(key, name, summary, label string, when func(*textfeat.FeatureSet) bool, delta float64) Rule {
	note := fmt.Sprintf("%s: %+.2f", label, delta)
	return Rule{
		Key:     key,
		Name:    name,
		Summary: summary,
		Eval: func(fs *textfeat.FeatureSet, score float64) (float64, string, bool) {
			if !when(fs) {
				return score, "", false
			}
			return score + delta, note, true
		},
	}
}

// contractionRatio is contractions per word with a guarded denominator.
func contractionRatio(fs *textfeat.FeatureSet) float64 {
	return float64(fs.ContractionCount) / float64(max(fs.WordCount, 1))
}

// DefaultRules returns the standard detection rule table with default
// weights, in evaluation order. Every rule is additive except short_text,
// which rescales the score accumulated before it; perfect_structure runs
// after short_text so the bonus survives dampening.
func DefaultRules() []Rule {
	w := DefaultWeights()

	return []Rule{
		{
			Key:     "ai_phrases",
			Name:    "AI assistant phrases",
			Summary: fmt.Sprintf("ai_phrase_count > 0 (+%.2f per phrase, capped at +%.2f)", w.AIPhrasePerHit, w.AIPhraseCap),
			Eval: func(fs *textfeat.FeatureSet, score float64) (float64, string, bool) {
				if fs.AIPhraseCount == 0 {
					return score, "", false
				}
				boost := math.Min(w.AIPhraseCap, float64(fs.AIPhraseCount)*w.AIPhrasePerHit)
				return score + boost, fmt.Sprintf("AI phrases: +%.2f", boost), true
			},
		},

		adjust("lexical_diversity_high", "High lexical diversity",
			fmt.Sprintf("lexical_diversity > %.2f", w.HighDiversityThreshold),
			"High lexical diversity",
			func(fs *textfeat.FeatureSet) bool { return fs.LexicalDiversity > w.HighDiversityThreshold },
			w.HighDiversityBoost),

		adjust("lexical_diversity_low", "Low lexical diversity",
			fmt.Sprintf("lexical_diversity < %.2f", w.LowDiversityThreshold),
			"Low lexical diversity",
			func(fs *textfeat.FeatureSet) bool { return fs.LexicalDiversity < w.LowDiversityThreshold },
			w.LowDiversityCredit),

		adjust("uniform_sentences", "Uniform sentence lengths",
			fmt.Sprintf("sentence_length_variance < %.0f and sentence_count > %d", w.UniformVarianceMax, w.UniformMinSentences),
			"Uniform sentences",
			func(fs *textfeat.FeatureSet) bool {
				return fs.SentenceLengthVariance < w.UniformVarianceMax && fs.SentenceCount > w.UniformMinSentences
			},
			w.UniformBoost),

		adjust("varied_sentences", "Varied sentence lengths",
			fmt.Sprintf("sentence_length_variance > %.0f", w.VariedVarianceMin),
			"Varied sentences",
			func(fs *textfeat.FeatureSet) bool { return fs.SentenceLengthVariance > w.VariedVarianceMin },
			w.VariedCredit),

		adjust("long_sentences", "Long average sentences",
			fmt.Sprintf("avg_sentence_length > %.0f", w.LongSentenceMin),
			"Long sentences",
			func(fs *textfeat.FeatureSet) bool { return fs.AvgSentenceLength > w.LongSentenceMin },
			w.LongSentenceBoost),

		adjust("short_sentences", "Short average sentences",
			fmt.Sprintf("avg_sentence_length < %.0f", w.ShortSentenceMax),
			"Short sentences",
			func(fs *textfeat.FeatureSet) bool { return fs.AvgSentenceLength < w.ShortSentenceMax },
			w.ShortSentenceCredit),

		adjust("formal_transitions", "Formal transitions",
			fmt.Sprintf("formal_transition_count > %d", w.FormalTransitionMin),
			"Formal transitions",
			func(fs *textfeat.FeatureSet) bool { return fs.FormalTransitionCount > w.FormalTransitionMin },
			w.FormalTransitionBoost),

		adjust("punctuation_variety", "Varied punctuation",
			"exclamation_count > 0 or question_count > 1",
			"Varied punctuation",
			func(fs *textfeat.FeatureSet) bool { return fs.ExclamationCount > 0 || fs.QuestionCount > 1 },
			w.PunctuationCredit),

		adjust("ellipsis", "Ellipsis usage",
			"ellipsis_count > 0",
			"Ellipsis usage",
			func(fs *textfeat.FeatureSet) bool { return fs.EllipsisCount > 0 },
			w.EllipsisCredit),

		adjust("contractions_high", "Frequent contractions",
			fmt.Sprintf("contraction_count/word_count > %.2f", w.ContractionRatioMin),
			"High contractions",
			func(fs *textfeat.FeatureSet) bool { return contractionRatio(fs) > w.ContractionRatioMin },
			w.ContractionCredit),

		adjust("contractions_none", "No contractions",
			fmt.Sprintf("no contractions and word_count > %d", w.NoContractionMinWords),
			"No contractions",
			func(fs *textfeat.FeatureSet) bool {
				return contractionRatio(fs) == 0 && fs.WordCount > w.NoContractionMinWords
			},
			w.NoContractionBoost),

		{
			Key:     "slang",
			Name:    "Slang and informal words",
			Summary: fmt.Sprintf("slang_count > 0 (-%.2f per word, capped at -%.2f)", w.SlangPerHit, w.SlangCap),
			Eval: func(fs *textfeat.FeatureSet, score float64) (float64, string, bool) {
				if fs.SlangCount == 0 {
					return score, "", false
				}
				credit := math.Min(w.SlangCap, float64(fs.SlangCount)*w.SlangPerHit)
				return score - credit, fmt.Sprintf("Slang words: -%.2f", credit), true
			},
		},

		adjust("repeated_chars", "Repeated characters",
			"repeated_chars > 0",
			"Repeated chars",
			func(fs *textfeat.FeatureSet) bool { return fs.RepeatedChars > 0 },
			w.RepeatedCharsCredit),

		adjust("uppercase_emphasis", "Uppercase emphasis",
			fmt.Sprintf("uppercase_word_ratio > %.2f", w.UppercaseRatioMin),
			"Uppercase emphasis",
			func(fs *textfeat.FeatureSet) bool { return fs.UppercaseWordRatio > w.UppercaseRatioMin },
			w.UppercaseCredit),

		{
			Key:     "short_text",
			Name:    "Short-text dampening",
			Summary: fmt.Sprintf("word_count < %d (deviation from neutral scaled by %.1f)", w.ShortTextMaxWords, w.ShortTextDamping),
			Eval: func(fs *textfeat.FeatureSet, score float64) (float64, string, bool) {
				if fs.WordCount >= w.ShortTextMaxWords {
					return score, "", false
				}
				return NeutralScore + (score-NeutralScore)*w.ShortTextDamping,
					"Short text: reduced confidence", true
			},
		},

		adjust("perfect_structure", "Perfect structure",
			fmt.Sprintf("no exclamations, slang, or repeated chars; lexical_diversity > %.2f and word_count > %d",
				w.PerfectDiversityMin, w.PerfectMinWords),
			"Perfect structure",
			func(fs *textfeat.FeatureSet) bool {
				return fs.ExclamationCount == 0 &&
					fs.SlangCount == 0 &&
					fs.RepeatedChars == 0 &&
					fs.LexicalDiversity > w.PerfectDiversityMin &&
					fs.WordCount > w.PerfectMinWords
			},
			w.PerfectBoost),
	}
}
