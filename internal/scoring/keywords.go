package scoring

import "strings"

// Keywords holds the fixed keyword lists the factor scorers match against.
// All matching is case-insensitive substring containment. The lists are
// read-only after construction; alternates are injected through Config.
type Keywords struct {
	HotNiches          []string
	SaturatedNiches    []string
	EmergingNiches     []string
	TrustedPlatforms   []string
	HighRiskCategories []string
	ExpensiveNiches    []string
	CheapNiches        []string
}

// DefaultKeywords returns the standard keyword lists. The exact contents
// matter: changing them changes scores.
func DefaultKeywords() Keywords {
	return Keywords{
		HotNiches:          []string{"finance", "investing", "weight loss", "digital marketing", "ai", "crypto"},
		SaturatedNiches:    []string{"weight loss", "make money online", "dating"},
		EmergingNiches:     []string{"ai", "web3", "nft", "metaverse", "automation"},
		TrustedPlatforms:   []string{"clickbank", "impact", "cj", "amazon"},
		HighRiskCategories: []string{"make money", "get rich", "lose weight fast", "miracle"},
		ExpensiveNiches:    []string{"finance", "insurance", "legal", "business", "investing"},
		CheapNiches:        []string{"hobbies", "crafts", "gaming", "entertainment"},
	}
}

// matchesAny reports whether text contains any of the keywords,
// case-insensitively.
func matchesAny(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
