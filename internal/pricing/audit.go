package pricing

import (
	"fmt"

	"cosec/internal/models"

	"github.com/shopspring/decimal"
)

// Finding kinds reported by Audit.
const (
	FindingEmpty          = "empty_table"
	FindingGap            = "gap"
	FindingOverlap        = "overlap"
	FindingNoOpenTop      = "no_open_top_tier"
	FindingMultipleOpen   = "multiple_open_tiers"
	FindingOpenNotHighest = "open_tier_not_highest"
)

// Finding describes one way a tier table departs from a clean partition of
// [0, ∞). Findings are informational; pricing keeps working either way.
type Finding struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Tiers   []string `json:"tiers,omitempty"`
}

// Audit inspects the table shape. step is the smallest price increment the
// table is authored in: consecutive tiers whose bounds differ by at most step
// are considered adjacent.
func Audit(tiers []models.FeeTier, step float64) []Finding {
	findings := []Finding{}
	if len(tiers) == 0 {
		return append(findings, Finding{Kind: FindingEmpty, Message: "no fee tiers configured; every listing is priced with a zero fee"})
	}

	sorted := Sorted(tiers)
	stepDec := decimal.NewFromFloat(sanitize(step))

	if first := sorted[0]; first.MinValue > 0 {
		findings = append(findings, Finding{
			Kind:    FindingGap,
			Message: fmt.Sprintf("prices below %s match no tier", money(first.MinValue)),
			Tiers:   []string{first.Name},
		})
	}

	var open []models.FeeTier
	for _, t := range sorted {
		if t.Unbounded() {
			open = append(open, t)
		}
	}
	if len(open) > 1 {
		names := make([]string, 0, len(open))
		for _, t := range open {
			names = append(names, t.Name)
		}
		findings = append(findings, Finding{Kind: FindingMultipleOpen, Message: "more than one tier has no maximum", Tiers: names})
	}
	if len(open) > 0 && open[0].MinValue < sorted[len(sorted)-1].MinValue {
		findings = append(findings, Finding{
			Kind:    FindingOpenNotHighest,
			Message: fmt.Sprintf("unbounded tier %q does not have the highest minimum", open[0].Name),
			Tiers:   []string{open[0].Name},
		})
	}

	// reach is the highest price covered so far; nil once an open tier is seen.
	reach := sorted[0].MaxValue
	reachName := sorted[0].Name
	for _, t := range sorted[1:] {
		if reach == nil {
			findings = append(findings, Finding{
				Kind:    FindingOverlap,
				Message: fmt.Sprintf("tier %q starts inside unbounded tier %q", t.Name, reachName),
				Tiers:   []string{reachName, t.Name},
			})
			continue
		}

		minDec := decimal.NewFromFloat(t.MinValue)
		reachDec := decimal.NewFromFloat(*reach)
		switch {
		case minDec.LessThanOrEqual(reachDec):
			findings = append(findings, Finding{
				Kind:    FindingOverlap,
				Message: fmt.Sprintf("tiers %q and %q both cover %s", reachName, t.Name, money(t.MinValue)),
				Tiers:   []string{reachName, t.Name},
			})
		case minDec.Sub(reachDec).GreaterThan(stepDec):
			findings = append(findings, Finding{
				Kind:    FindingGap,
				Message: fmt.Sprintf("prices between %s and %s match no tier", money(*reach), money(t.MinValue)),
				Tiers:   []string{reachName, t.Name},
			})
		}

		if t.MaxValue == nil || *t.MaxValue > *reach {
			reach = t.MaxValue
			reachName = t.Name
		}
	}

	if reach != nil {
		findings = append(findings, Finding{
			Kind:    FindingNoOpenTop,
			Message: fmt.Sprintf("prices above %s match no tier", money(*reach)),
			Tiers:   []string{reachName},
		})
	}

	return findings
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
