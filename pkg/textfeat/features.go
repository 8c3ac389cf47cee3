// Package textfeat extracts lexical and stylistic features from raw text.
// Extraction is a pure function over the input string and is total: any
// non-empty text, including punctuation-only or single-character input,
// produces a complete FeatureSet with zero/default values rather than an
// error.
package textfeat

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FeatureSet holds every signal the scoring rules read. Counts are always
// non-negative and every ratio uses a guarded denominator, so a FeatureSet
// is valid for degenerate inputs too. The json tags define the feature
// names exposed through the API.
type FeatureSet struct {
	WordCount              int     `json:"word_count"`
	CharCount              int     `json:"char_count"`
	AvgWordLength          float64 `json:"avg_word_length"`
	SentenceCount          int     `json:"sentence_count"`
	AvgSentenceLength      float64 `json:"avg_sentence_length"`
	SentenceLengthVariance float64 `json:"sentence_length_variance"`
	LexicalDiversity       float64 `json:"lexical_diversity"`
	AIPhraseCount          int     `json:"ai_phrase_count"`
	ExclamationCount       int     `json:"exclamation_count"`
	QuestionCount          int     `json:"question_count"`
	EllipsisCount          int     `json:"ellipsis_count"`
	CommaCount             int     `json:"comma_count"`
	UppercaseWordRatio     float64 `json:"uppercase_word_ratio"`
	ContractionCount       int     `json:"contraction_count"`
	SlangCount             int     `json:"slang_count"`
	RepeatedChars          int     `json:"repeated_chars"`
	FormalTransitionCount  int     `json:"formal_transition_count"`
}

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Extract computes the full FeatureSet for the given text.
func Extract(text string) *FeatureSet {
	fs := &FeatureSet{}

	words := strings.Fields(text)
	fs.WordCount = len(words)
	fs.CharCount = utf8.RuneCountInString(text)

	var runeTotal int
	for _, w := range words {
		runeTotal += utf8.RuneCountInString(w)
	}
	fs.AvgWordLength = float64(runeTotal) / float64(max(len(words), 1))

	sentences := splitSentences(text)
	fs.SentenceCount = len(sentences)
	fs.AvgSentenceLength = float64(fs.WordCount) / float64(max(len(sentences), 1))
	fs.SentenceLengthVariance = sentenceLengthVariance(sentences)

	folded := make([]string, len(words))
	for i, w := range words {
		folded[i] = strings.ToLower(w)
	}
	unique := make(map[string]struct{}, len(folded))
	for _, w := range folded {
		unique[w] = struct{}{}
	}
	fs.LexicalDiversity = float64(len(unique)) / float64(max(len(words), 1))

	textLower := strings.ToLower(text)
	fs.AIPhraseCount = countPhrasesPresent(textLower, aiPhrases)
	fs.FormalTransitionCount = countPhrasesPresent(textLower, formalTransitions)

	fs.ExclamationCount = strings.Count(text, "!")
	fs.QuestionCount = strings.Count(text, "?")
	fs.EllipsisCount = strings.Count(text, "...")
	fs.CommaCount = strings.Count(text, ",")

	var upper int
	for _, w := range words {
		if utf8.RuneCountInString(w) > 1 && isUpperWord(w) {
			upper++
		}
	}
	fs.UppercaseWordRatio = float64(upper) / float64(max(len(words), 1))

	for _, suffix := range contractionSuffixes {
		fs.ContractionCount += strings.Count(text, suffix)
	}

	fs.SlangCount = countTokensIn(folded, slangWords)
	fs.RepeatedChars = countRepeatedRuns(text)

	return fs
}

// splitSentences splits on runs of sentence terminators and drops
// empty/whitespace-only segments. Text with no terminator at all yields a
// single sentence; terminator-only text yields none.
func splitSentences(text string) []string {
	var sentences []string
	for _, seg := range sentenceEnd.Split(text, -1) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			sentences = append(sentences, seg)
		}
	}
	return sentences
}

// sentenceLengthVariance returns the population variance of per-sentence
// word counts, or 0 when there are fewer than two sentences.
func sentenceLengthVariance(sentences []string) float64 {
	if len(sentences) < 2 {
		return 0
	}
	lengths := make([]float64, len(sentences))
	var sum float64
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))
	var sq float64
	for _, l := range lengths {
		d := l - mean
		sq += d * d
	}
	return sq / float64(len(lengths))
}

// isUpperWord reports whether the word contains at least one cased rune and
// no lowercase runes. "NASA" and "ABC1" qualify; "NaSA" and "1234" do not.
func isUpperWord(word string) bool {
	hasCased := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// countRepeatedRuns counts maximal runs of the same rune repeated three or
// more times ("soooo" is one run, "aaabbbb" is two).
func countRepeatedRuns(text string) int {
	var count, runLen int
	var prev rune
	first := true
	for _, r := range text {
		if !first && r == prev {
			runLen++
			if runLen == 3 {
				count++
			}
			continue
		}
		prev = r
		runLen = 1
		first = false
	}
	return count
}
