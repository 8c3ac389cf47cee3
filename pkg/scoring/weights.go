package scoring

// Score bounds. The neutral midpoint is where every text starts; the final
// probability never leaves the clamp range, so a verdict is never reported
// as certain.
const (
	NeutralScore   = 0.5
	MinProbability = 0.05
	MaxProbability = 0.95
)

// Weights holds every constant in the scoring table. The values are
// contractual: they are tuned against the fixed lexicons in textfeat, and
// changing either side alone breaks output parity.
type Weights struct {
	// R1: AI assistant phrases
	AIPhrasePerHit float64
	AIPhraseCap    float64

	// R2/R3: lexical diversity
	HighDiversityThreshold float64
	HighDiversityBoost     float64
	LowDiversityThreshold  float64
	LowDiversityCredit     float64

	// R4/R5: sentence uniformity
	UniformVarianceMax  float64
	UniformMinSentences int // uniformity only counts with more sentences than this
	UniformBoost        float64
	VariedVarianceMin   float64
	VariedCredit        float64

	// R6/R7: average sentence length
	LongSentenceMin     float64
	LongSentenceBoost   float64
	ShortSentenceMax    float64
	ShortSentenceCredit float64

	// R8: formal transitions
	FormalTransitionMin   int
	FormalTransitionBoost float64

	// R9/R10: punctuation
	PunctuationCredit float64
	EllipsisCredit    float64

	// R11/R12: contractions
	ContractionRatioMin   float64
	ContractionCredit     float64
	NoContractionMinWords int
	NoContractionBoost    float64

	// R13: slang
	SlangPerHit float64
	SlangCap    float64

	// R14: repeated characters
	RepeatedCharsCredit float64

	// R15: uppercase emphasis
	UppercaseRatioMin float64
	UppercaseCredit   float64

	// R16: short-text dampening
	ShortTextMaxWords int
	ShortTextDamping  float64 // deviation from neutral is scaled by this

	// R17: perfect structure
	PerfectDiversityMin float64
	PerfectMinWords     int
	PerfectBoost        float64
}

// DefaultWeights returns the standard detection weights.
func DefaultWeights() Weights {
	return Weights{
		AIPhrasePerHit: 0.15,
		AIPhraseCap:    0.25,

		HighDiversityThreshold: 0.80,
		HighDiversityBoost:     0.15,
		LowDiversityThreshold:  0.60,
		LowDiversityCredit:     -0.12,

		UniformVarianceMax:  10,
		UniformMinSentences: 2,
		UniformBoost:        0.12,
		VariedVarianceMin:   30,
		VariedCredit:        -0.10,

		LongSentenceMin:     25,
		LongSentenceBoost:   0.10,
		ShortSentenceMax:    15,
		ShortSentenceCredit: -0.08,

		FormalTransitionMin:   2,
		FormalTransitionBoost: 0.12,

		PunctuationCredit: -0.10,
		EllipsisCredit:    -0.08,

		ContractionRatioMin:   0.03,
		ContractionCredit:     -0.12,
		NoContractionMinWords: 50,
		NoContractionBoost:    0.08,

		SlangPerHit: 0.10,
		SlangCap:    0.20,

		RepeatedCharsCredit: -0.10,

		UppercaseRatioMin: 0.05,
		UppercaseCredit:   -0.08,

		ShortTextMaxWords: 30,
		ShortTextDamping:  0.6,

		PerfectDiversityMin: 0.75,
		PerfectMinWords:     40,
		PerfectBoost:        0.10,
	}
}
