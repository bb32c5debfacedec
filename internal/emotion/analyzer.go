// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emotion scores text against a fixed emotion taxonomy using
// keyword detection, with English and Chinese vocabularies.
package emotion

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/immersion-engine/pkg/types"
)

// Analyzer detects emotions and sentiment in narrative text. It holds only
// compiled keyword patterns and is safe for concurrent use.
type Analyzer struct {
	emotionPatterns    map[string]*regexp.Regexp
	intensifierPattern *regexp.Regexp
	negationPattern    *regexp.Regexp
}

// NewAnalyzer compiles the keyword vocabularies into matchers.
func NewAnalyzer() *Analyzer {
	a := &Analyzer{emotionPatterns: make(map[string]*regexp.Regexp, len(emotionKeywords))}
	for name, set := range emotionKeywords {
		a.emotionPatterns[name] = wordPattern(set.en)
	}
	a.intensifierPattern = wordPattern(intensifiers.en)
	a.negationPattern = wordPattern(negations.en)
	return a
}

// wordPattern builds a case-insensitive whole-word matcher. Only the English
// vocabulary goes through regexp; RE2 word boundaries are ASCII-only, so the
// Chinese terms are counted as substrings instead.
func wordPattern(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

func countSet(text string, re *regexp.Regexp, zh []string) int {
	n := len(re.FindAllString(text, -1))
	for _, w := range zh {
		n += strings.Count(text, w)
	}
	return n
}

// Analyze scores text against the taxonomy. Scores are normalized keyword
// shares clamped to [0,1]; they do not need to sum to 1. Empty text is an
// invalid input. When detailed is true the profile carries raw keyword
// counts and the negation/intensifier flags.
func (a *Analyzer) Analyze(text string, detailed bool) (types.EmotionProfile, error) {
	if strings.TrimSpace(text) == "" {
		return types.EmotionProfile{}, fmt.Errorf("%w: text must not be empty", types.ErrInvalidInput)
	}

	counts := make(map[string]int, len(Taxonomy))
	total := 0
	for _, name := range Taxonomy {
		n := countSet(text, a.emotionPatterns[name], emotionKeywords[name].zh)
		counts[name] = n
		total += n
	}

	scores := make(map[string]float64, len(Taxonomy))
	for _, name := range Taxonomy {
		if total > 0 {
			scores[name] = round3(float64(counts[name]) / float64(total))
		} else {
			scores[name] = 0
		}
	}

	negationCount := countSet(text, a.negationPattern, negations.zh)
	intensifierCount := countSet(text, a.intensifierPattern, intensifiers.zh)

	primary, confidence := primaryEmotion(scores)
	profile := types.EmotionProfile{
		PrimaryEmotion: primary,
		Confidence:     confidence,
		Emotions:       scores,
		Sentiment:      sentiment(scores, negationCount),
		Intensity:      intensity(text, intensifierCount),
	}

	if detailed {
		profile.Details = &types.EmotionDetails{
			KeywordCounts:  counts,
			TextLength:     utf8.RuneCountInString(text),
			HasNegation:    negationCount > 0,
			HasIntensifier: intensifierCount > 0,
		}
	}
	return profile, nil
}

// ForHaptics maps the analysis onto the haptic engine's emotion vocabulary
// and pairs it with the text's intensity.
func (a *Analyzer) ForHaptics(text string) (string, float64, error) {
	profile, err := a.Analyze(text, false)
	if err != nil {
		return "", 0, err
	}
	mapped := map[string]string{
		"joy":      "happy",
		"sadness":  "sad",
		"anger":    "tense",
		"fear":     "tense",
		"surprise": "surprised",
		"disgust":  "calm",
		"neutral":  "calm",
	}
	emo, ok := mapped[profile.PrimaryEmotion]
	if !ok {
		emo = "calm"
	}
	return emo, profile.Intensity, nil
}

// primaryEmotion picks the arg-max score in taxonomy order; ties resolve to
// the earliest-declared emotion. Texts with no emotional keywords read as
// neutral with confidence 0.5.
func primaryEmotion(scores map[string]float64) (string, float64) {
	best := ""
	bestScore := 0.0
	total := 0.0
	for _, name := range Taxonomy {
		s := scores[name]
		total += s
		if s > bestScore {
			best = name
			bestScore = s
		}
	}
	if best == "" || bestScore == 0 {
		return "neutral", 0.5
	}
	return best, round3(bestScore / total)
}

// sentiment derives polarity from the positive/negative score split;
// negations dampen and swap the two sides. Subjectivity grows with overall
// emotional keyword density.
func sentiment(scores map[string]float64, negationCount int) types.Sentiment {
	pos, neg, sum := 0.0, 0.0, 0.0
	for _, e := range positiveEmotions {
		pos += scores[e]
	}
	for _, e := range negativeEmotions {
		neg += scores[e]
	}
	for _, s := range scores {
		sum += s
	}

	if negationCount > 0 {
		pos, neg = neg*0.7, pos*0.7
	}

	polarity := 0.0
	if total := pos + neg; total > 0 {
		polarity = (pos - neg) / total
	}
	return types.Sentiment{
		Polarity:     round3(polarity),
		Subjectivity: round3(math.Min(1, sum*2)),
	}
}

// intensity estimates emotional force from intensifiers, exclamation marks,
// and uppercase share, clamped to [0,1].
func intensity(text string, intensifierCount int) float64 {
	exclamations := strings.Count(text, "!") + strings.Count(text, "！")
	upper := 0
	runes := 0
	for _, r := range text {
		runes++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	ratio := float64(upper) / math.Max(float64(runes), 1)

	v := 0.5 + float64(intensifierCount)*0.1 + float64(exclamations)*0.05 + ratio*0.2
	return round3(math.Min(1, math.Max(0, v)))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
