package scoring_test

import (
	"testing"

	"github.com/veritext/veritext/pkg/scoring"
	"github.com/veritext/veritext/pkg/textfeat"
)

func ruleByKey(t *testing.T, key string) scoring.Rule {
	t.Helper()
	for _, r := range scoring.DefaultRules() {
		if r.Key == key {
			return r
		}
	}
	t.Fatalf("no rule with key %q", key)
	return scoring.Rule{}
}

// applyRule evaluates a single rule from a neutral score and returns the
// delta it produced and whether it fired.
func applyRule(t *testing.T, key string, fs *textfeat.FeatureSet) (float64, bool) {
	t.Helper()
	r := ruleByKey(t, key)
	next, _, fired := r.Eval(fs, scoring.NeutralScore)
	return next - scoring.NeutralScore, fired
}

func TestRule_LexicalDiversityBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		diversity float64
		key       string
		wantFired bool
		wantDelta float64
	}{
		{"above high threshold", 0.81, "lexical_diversity_high", true, 0.15},
		{"exactly high threshold", 0.80, "lexical_diversity_high", false, 0},
		{"below low threshold", 0.59, "lexical_diversity_low", true, -0.12},
		{"exactly low threshold", 0.60, "lexical_diversity_low", false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := &textfeat.FeatureSet{LexicalDiversity: tc.diversity}
			delta, fired := applyRule(t, tc.key, fs)
			if fired != tc.wantFired {
				t.Fatalf("fired = %v, want %v", fired, tc.wantFired)
			}
			if !almostEqual(delta, tc.wantDelta) {
				t.Errorf("delta = %f, want %f", delta, tc.wantDelta)
			}
		})
	}
}

func TestRule_UniformSentencesNeedsThreeSentences(t *testing.T) {
	fs := &textfeat.FeatureSet{SentenceLengthVariance: 5, SentenceCount: 2}
	if _, fired := applyRule(t, "uniform_sentences", fs); fired {
		t.Error("uniformity must not fire with two or fewer sentences")
	}

	fs.SentenceCount = 3
	delta, fired := applyRule(t, "uniform_sentences", fs)
	if !fired {
		t.Fatal("expected uniformity to fire with three sentences")
	}
	if !almostEqual(delta, 0.12) {
		t.Errorf("delta = %f, want 0.12", delta)
	}
}

func TestRule_VariedSentencesIgnoresSentenceCount(t *testing.T) {
	// The varied-sentence credit has no sentence-count guard.
	fs := &textfeat.FeatureSet{SentenceLengthVariance: 31, SentenceCount: 2}
	delta, fired := applyRule(t, "varied_sentences", fs)
	if !fired {
		t.Fatal("expected varied sentences to fire")
	}
	if !almostEqual(delta, -0.10) {
		t.Errorf("delta = %f, want -0.10", delta)
	}
}

func TestRule_SentenceLength(t *testing.T) {
	fs := &textfeat.FeatureSet{AvgSentenceLength: 26}
	if delta, fired := applyRule(t, "long_sentences", fs); !fired || !almostEqual(delta, 0.10) {
		t.Errorf("long sentences: fired=%v delta=%f", fired, delta)
	}

	fs.AvgSentenceLength = 14
	if delta, fired := applyRule(t, "short_sentences", fs); !fired || !almostEqual(delta, -0.08) {
		t.Errorf("short sentences: fired=%v delta=%f", fired, delta)
	}

	// Dead zone between the thresholds.
	fs.AvgSentenceLength = 20
	if _, fired := applyRule(t, "long_sentences", fs); fired {
		t.Error("long sentences must not fire at 20")
	}
	if _, fired := applyRule(t, "short_sentences", fs); fired {
		t.Error("short sentences must not fire at 20")
	}
}

func TestRule_PunctuationVariety(t *testing.T) {
	tests := []struct {
		name      string
		excl, q   int
		wantFired bool
	}{
		{"no punctuation", 0, 0, false},
		{"single question mark is not enough", 0, 1, false},
		{"two question marks", 0, 2, true},
		{"one exclamation", 1, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := &textfeat.FeatureSet{ExclamationCount: tc.excl, QuestionCount: tc.q}
			if _, fired := applyRule(t, "punctuation_variety", fs); fired != tc.wantFired {
				t.Errorf("fired = %v, want %v", fired, tc.wantFired)
			}
		})
	}
}

func TestRule_EllipsisStacksWithPunctuation(t *testing.T) {
	fs := &textfeat.FeatureSet{ExclamationCount: 1, EllipsisCount: 1}
	if _, fired := applyRule(t, "punctuation_variety", fs); !fired {
		t.Error("expected punctuation rule to fire")
	}
	if delta, fired := applyRule(t, "ellipsis", fs); !fired || !almostEqual(delta, -0.08) {
		t.Errorf("ellipsis: fired=%v delta=%f", fired, delta)
	}
}

func TestRule_ContractionRatio(t *testing.T) {
	tests := []struct {
		name         string
		contractions int
		words        int
		key          string
		wantFired    bool
	}{
		{"high ratio", 4, 100, "contractions_high", true},
		{"ratio exactly at threshold", 3, 100, "contractions_high", false},
		{"zero with enough words", 0, 51, "contractions_none", true},
		{"zero but too few words", 0, 50, "contractions_none", false},
		{"nonzero ratio blocks the boost", 1, 100, "contractions_none", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := &textfeat.FeatureSet{ContractionCount: tc.contractions, WordCount: tc.words}
			if _, fired := applyRule(t, tc.key, fs); fired != tc.wantFired {
				t.Errorf("fired = %v, want %v", fired, tc.wantFired)
			}
		})
	}
}

func TestRule_SlangCap(t *testing.T) {
	fs := &textfeat.FeatureSet{SlangCount: 1}
	if delta, _ := applyRule(t, "slang", fs); !almostEqual(delta, -0.10) {
		t.Errorf("one slang word: delta = %f, want -0.10", delta)
	}

	fs.SlangCount = 5
	if delta, _ := applyRule(t, "slang", fs); !almostEqual(delta, -0.20) {
		t.Errorf("capped slang: delta = %f, want -0.20", delta)
	}
}

func TestRule_UppercaseEmphasis(t *testing.T) {
	fs := &textfeat.FeatureSet{UppercaseWordRatio: 0.05}
	if _, fired := applyRule(t, "uppercase_emphasis", fs); fired {
		t.Error("must not fire at exactly 0.05")
	}

	fs.UppercaseWordRatio = 0.06
	if delta, fired := applyRule(t, "uppercase_emphasis", fs); !fired || !almostEqual(delta, -0.08) {
		t.Errorf("fired=%v delta=%f", fired, delta)
	}
}

func TestRule_ShortTextBoundary(t *testing.T) {
	r := ruleByKey(t, "short_text")

	fs := &textfeat.FeatureSet{WordCount: 30}
	if _, _, fired := r.Eval(fs, 0.8); fired {
		t.Error("must not fire at exactly 30 words")
	}

	fs.WordCount = 29
	next, _, fired := r.Eval(fs, 0.8)
	if !fired {
		t.Fatal("expected dampening to fire below 30 words")
	}
	if !almostEqual(next, 0.5+(0.8-0.5)*0.6) {
		t.Errorf("dampened score = %f, want %f", next, 0.5+(0.8-0.5)*0.6)
	}
}

func TestRule_PerfectStructure(t *testing.T) {
	fs := &textfeat.FeatureSet{
		WordCount:        41,
		LexicalDiversity: 0.76,
	}
	delta, fired := applyRule(t, "perfect_structure", fs)
	if !fired {
		t.Fatal("expected perfect structure to fire")
	}
	if !almostEqual(delta, 0.10) {
		t.Errorf("delta = %f, want 0.10", delta)
	}

	// Any informal signal blocks the bonus.
	for _, mutate := range []func(*textfeat.FeatureSet){
		func(fs *textfeat.FeatureSet) { fs.ExclamationCount = 1 },
		func(fs *textfeat.FeatureSet) { fs.SlangCount = 1 },
		func(fs *textfeat.FeatureSet) { fs.RepeatedChars = 1 },
		func(fs *textfeat.FeatureSet) { fs.LexicalDiversity = 0.75 },
		func(fs *textfeat.FeatureSet) { fs.WordCount = 40 },
	} {
		blocked := &textfeat.FeatureSet{WordCount: 41, LexicalDiversity: 0.76}
		mutate(blocked)
		if _, fired := applyRule(t, "perfect_structure", blocked); fired {
			t.Errorf("expected bonus to be blocked for %+v", blocked)
		}
	}
}

func TestDefaultRules_KeysUniqueAndOrdered(t *testing.T) {
	rules := scoring.DefaultRules()
	if len(rules) == 0 {
		t.Fatal("expected a non-empty rule table")
	}

	seen := make(map[string]bool)
	for _, r := range rules {
		if r.Key == "" || r.Name == "" || r.Summary == "" {
			t.Errorf("rule %+v missing metadata", r.Key)
		}
		if seen[r.Key] {
			t.Errorf("duplicate rule key %q", r.Key)
		}
		seen[r.Key] = true
	}

	// The dampening rule rescales accumulated score, so it must come after
	// every additive rule except the perfect-structure bonus.
	if rules[len(rules)-1].Key != "perfect_structure" {
		t.Errorf("expected perfect_structure last, got %q", rules[len(rules)-1].Key)
	}
	if rules[len(rules)-2].Key != "short_text" {
		t.Errorf("expected short_text second to last, got %q", rules[len(rules)-2].Key)
	}
}
