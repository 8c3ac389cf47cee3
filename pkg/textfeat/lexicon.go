package textfeat

import "strings"

// The lexicons below are fixed: the scoring weights are tuned against them,
// so they are code constants rather than configuration.

// aiPhrases are stock constructions that AI assistants lean on. Matched as
// case-insensitive substrings of the whole text.
var aiPhrases = []string{
	"as an ai", "language model", "i don't have", "i cannot", "i can't",
	"it's important to note", "it is important to note",
	"in conclusion", "furthermore", "moreover", "however",
	"it's worth noting", "it is worth noting",
	"i apologize", "i'm sorry", "my apologies",
	"delve into", "navigating", "landscape of",
	"realm of", "it's crucial", "underscores the importance",
}

// formalTransitions are connectors typical of formal prose. Matched the
// same way as aiPhrases; "furthermore" and "moreover" deliberately appear
// in both lists.
var formalTransitions = []string{
	"furthermore", "moreover", "additionally", "consequently",
	"therefore", "thus", "hence", "accordingly", "nevertheless",
}

// contractionSuffixes are counted as literal, case-sensitive occurrences
// anywhere in the text.
var contractionSuffixes = []string{"n't", "'m", "'re", "'ve", "'ll", "'d", "'s"}

// slangWords are matched against whole case-folded tokens only.
var slangWords = map[string]struct{}{
	"lol": {}, "omg": {}, "btw": {}, "idk": {}, "tbh": {}, "ngl": {},
	"fr": {}, "rn": {}, "gonna": {}, "wanna": {}, "gotta": {},
}

// countPhrasesPresent counts how many list entries occur somewhere in the
// lowered text. Each entry is counted at most once regardless of how often
// it repeats, but one stretch of text can satisfy several entries.
func countPhrasesPresent(textLower string, phrases []string) int {
	var n int
	for _, p := range phrases {
		if strings.Contains(textLower, p) {
			n++
		}
	}
	return n
}

// countTokensIn counts folded tokens with exact membership in the set.
// Unlike countPhrasesPresent this counts every matching token, and a token
// merely containing a slang word ("frfr", "lolita") does not match.
func countTokensIn(tokens []string, set map[string]struct{}) int {
	var n int
	for _, tok := range tokens {
		if _, ok := set[tok]; ok {
			n++
		}
	}
	return n
}
