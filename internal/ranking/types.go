// Package ranking provides the scoring primitives shared by search and
// recommendation: weighted field scoring for free-text queries and
// attribute similarity between documents.
package ranking

// Factor is one weighted contribution to a similarity score. Factors are
// declared in tie-break priority order.
type Factor int

const (
	FactorCategory Factor = iota
	FactorFocus
	FactorRegion
	FactorTemporal
	FactorAffinity
)

var factorOrder = []Factor{FactorCategory, FactorFocus, FactorRegion, FactorTemporal, FactorAffinity}

// String returns a string representation of the factor.
func (f Factor) String() string {
	switch f {
	case FactorCategory:
		return "category"
	case FactorFocus:
		return "focus"
	case FactorRegion:
		return "region"
	case FactorTemporal:
		return "temporal"
	case FactorAffinity:
		return "affinity"
	default:
		return "unknown"
	}
}

// Reason returns the human-readable justification shown when f dominates.
func (f Factor) Reason() string {
	switch f {
	case FactorCategory:
		return "same category"
	case FactorFocus:
		return "overlapping research focus"
	case FactorRegion:
		return "same region"
	case FactorTemporal:
		return "active in the same period"
	case FactorAffinity:
		return "related to this part of the biography"
	default:
		return "related content"
	}
}

// Breakdown records how much each factor contributed to a similarity score.
type Breakdown struct {
	Contributions map[Factor]float64
}

// NewBreakdown creates a new Breakdown instance.
func NewBreakdown() *Breakdown {
	return &Breakdown{Contributions: make(map[Factor]float64)}
}

// Add adds v to factor f. Non-positive contributions are ignored.
func (b *Breakdown) Add(f Factor, v float64) {
	if v > 0 {
		b.Contributions[f] += v
	}
}

// Score returns the total of all contributions.
func (b *Breakdown) Score() float64 {
	total := 0.0
	for _, f := range factorOrder {
		total += b.Contributions[f]
	}
	return total
}

// Dominant returns the factor with the largest contribution, ties going to
// the factor declared first. ok is false when nothing contributed.
func (b *Breakdown) Dominant() (Factor, bool) {
	best, bestValue := FactorCategory, 0.0
	for _, f := range factorOrder {
		if v := b.Contributions[f]; v > bestValue {
			best, bestValue = f, v
		}
	}
	return best, bestValue > 0
}
