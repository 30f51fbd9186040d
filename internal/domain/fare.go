package domain

// Pricing is the per-person fare table, tiered by age band. Amounts are
// whole rupees.
type Pricing struct {
	AdultFare  int64 `json:"adultFare"`
	ChildFare  int64 `json:"childFare"`
	SeniorFare int64 `json:"seniorFare"`
}

// DefaultPricing mirrors the flat ticket price the trip started with.
func DefaultPricing() Pricing {
	return Pricing{AdultFare: 2500, ChildFare: 2500, SeniorFare: 2500}
}

// FareFor returns the fare for one person. Seniors are 60 and up,
// children under 18, everyone else pays the adult fare. Callers must
// have validated age already (1-120).
func FareFor(age int, p Pricing) int64 {
	switch {
	case age >= 60:
		return p.SeniorFare
	case age < 18:
		return p.ChildFare
	default:
		return p.AdultFare
	}
}
