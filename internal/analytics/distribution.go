package analytics

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

const otherCategory = "Other"

// DistributionEntry is one group of a distribution.
type DistributionEntry struct {
	Label      string
	Count      int
	Percentage float64
}

// CategoryDistribution groups every business by category. Blank categories
// count as "Other". Percentages are over all businesses. top > 0 truncates
// the result after sorting.
func CategoryDistribution(businesses []domain.Business, top int) []DistributionEntry {
	entries := group(businesses, func(b domain.Business) string {
		if c := strings.TrimSpace(b.Category); c != "" {
			return c
		}
		return otherCategory
	})
	if top > 0 && len(entries) > top {
		entries = entries[:top]
	}
	return entries
}

// RegionDistribution groups in-region businesses by domain.RegionLabel.
// Percentages are over the in-region businesses only.
func RegionDistribution(businesses []domain.Business) []DistributionEntry {
	inRegion := make([]domain.Business, 0, len(businesses))
	for _, b := range businesses {
		if domain.IsInRegion(b) {
			inRegion = append(inRegion, b)
		}
	}
	return group(inRegion, domain.RegionLabel)
}

// group counts businesses by key and sorts descending by count. The sort is
// stable over first-seen order, so ties keep input order.
func group(businesses []domain.Business, key func(domain.Business) string) []DistributionEntry {
	index := make(map[string]int)
	entries := make([]DistributionEntry, 0)

	for _, b := range businesses {
		k := key(b)
		i, ok := index[k]
		if !ok {
			i = len(entries)
			index[k] = i
			entries = append(entries, DistributionEntry{Label: k})
		}
		entries[i].Count++
	}

	total := len(businesses)
	for i := range entries {
		entries[i].Percentage = percentage(entries[i].Count, total)
	}

	slices.SortStableFunc(entries, func(a, b DistributionEntry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return entries
}

// percentage returns count/total*100 rounded half away from zero to one
// decimal place. The rounding applies to the exact decimal ratio, so 3 of
// 2000 is 0.15 and reports 0.2; binary float formatting would report 0.1.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(count) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(1).
		InexactFloat64()
}
