package scoring

import "sort"

// CulturalScore compares the candidate's single cultural-fit value against
// every required attribute minimum and averages the credits, scaled to 100.
// With no requirements the value passes through unchanged.
func CulturalScore(fit float64, required map[string]float64) float64 {
	if len(required) == 0 {
		return fit
	}
	attrs := make([]string, 0, len(required))
	for attr := range required {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	var credits float64
	for _, attr := range attrs {
		credits += skillCredit(fit, required[attr])
	}
	return credits / float64(len(attrs)) * 100
}
