// Package scoring computes session scores from recorded evaluations.
// Everything here is pure and deterministic: the same questions always
// produce the same scores, so completion can be recomputed safely.
package scoring

import (
	"math"

	"prepwise/interview/internal/models"
)

// OverallScore is the mean of evaluation scores above zero, scaled to 0-100
// and rounded. Skipped questions carry a zero-score evaluation and therefore
// never qualify. Sessions with no qualifying question score 0.
func OverallScore(questions []models.Question) int {
	total := 0
	count := 0
	for i := range questions {
		eval := questions[i].Evaluation
		if eval == nil || eval.Score <= 0 {
			continue
		}
		total += eval.Score
		count++
	}

	if count == 0 {
		return 0
	}

	avg := float64(total) / float64(count)
	return int(math.Round(avg * 10))
}

// CategoryBreakdown returns the mean score per category on a 0-100 scale,
// keyed by category name. Categories with no qualifying question are omitted,
// not zero-filled.
func CategoryBreakdown(questions []models.Question) map[string]int {
	type bucket struct {
		total int
		count int
	}
	buckets := make(map[string]*bucket)

	for i := range questions {
		eval := questions[i].Evaluation
		if eval == nil || eval.Score <= 0 {
			continue
		}
		b := buckets[questions[i].Category]
		if b == nil {
			b = &bucket{}
			buckets[questions[i].Category] = b
		}
		b.total += eval.Score
		b.count++
	}

	breakdown := make(map[string]int, len(buckets))
	for category, b := range buckets {
		breakdown[category] = int(math.Round(float64(b.total) / float64(b.count) * 10))
	}
	return breakdown
}
