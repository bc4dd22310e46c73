// Package reconcile maps a free-text LLM answer onto one of a fixed list of options.
package reconcile

import (
	"strings"
	"unicode/utf8"
)

const (
	// ConfidenceThreshold is the score a match must exceed to replace the raw answer.
	ConfidenceThreshold = 0.6
	// ContainmentFloor is the minimum score of an option found verbatim in the answer.
	ContainmentFloor = 0.9
	// MinContainedLength is the option length (in characters) that must be exceeded
	// before containment counts.
	MinContainedLength = 4
)

// Match is the best option found for a target and its score.
// Option is nil when nothing matched.
type Match struct {
	Option *string
	Score  float64
}

// Result is the reconciled answer returned to callers.
type Result struct {
	Answer        string  `json:"answer"`
	Confidence    float64 `json:"confidence"`
	RawResponse   string  `json:"raw_response"`
	MatchedOption *string `json:"matched_option"`
}

// Score rates a normalized option against a normalized target, lifting options
// that appear inside the target to at least ContainmentFloor.
func Score(target, option string) float64 {
	score := Similarity(target, option)
	if utf8.RuneCountInString(option) > MinContainedLength && strings.Contains(target, option) {
		score = max(score, ContainmentFloor)
	}
	return score
}

// BestMatch scans options left to right and returns the highest scoring one.
// Ties keep the earlier option.
func BestMatch(target string, options []string) Match {
	var best Match
	t := Normalize(target)
	for i := range options {
		score := Score(t, Normalize(options[i]))
		if score > best.Score {
			best = Match{Option: &options[i], Score: score}
		}
	}
	return best
}

// Accepted reports whether m is confident enough to stand in for the raw answer.
func (m Match) Accepted() bool {
	return m.Option != nil && m.Score > ConfidenceThreshold
}

// Decide returns the matched option when it clears ConfidenceThreshold and raw otherwise.
func Decide(m Match, raw string) string {
	if m.Accepted() {
		return *m.Option
	}
	return raw
}

// Reconcile picks the final answer for raw among options. MatchedOption is
// only set when the match was accepted; Confidence always carries the best score.
func Reconcile(raw string, options []string) Result {
	m := BestMatch(raw, options)
	res := Result{
		Answer:      Decide(m, raw),
		Confidence:  m.Score,
		RawResponse: raw,
	}
	if m.Accepted() {
		opt := *m.Option
		res.MatchedOption = &opt
	}
	return res
}
