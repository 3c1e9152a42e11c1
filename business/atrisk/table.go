package atrisk

import (
	"cmp"
	"slices"
	"strings"

	"rgDashboard/domain"
)

type UserFilter struct {
	// empty or "All" matches every cluster
	Cluster string
	Search  string
}

func Filter(users []domain.AtRiskUser, f UserFilter) []domain.AtRiskUser {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	anyCluster := f.Cluster == "" || strings.EqualFold(f.Cluster, string(domain.SegmentAll))

	out := make([]domain.AtRiskUser, 0, len(users))
	for _, u := range users {
		if !anyCluster && !strings.EqualFold(string(u.Cluster), f.Cluster) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Username), search) {
			continue
		}
		out = append(out, u)
	}
	return out
}

var sortKeys = map[string]func(a, b domain.AtRiskUser) int{
	"username":         func(a, b domain.AtRiskUser) int { return cmp.Compare(a.Username, b.Username) },
	"cluster":          func(a, b domain.AtRiskUser) int { return cmp.Compare(a.Cluster, b.Cluster) },
	"riskLevel":        func(a, b domain.AtRiskUser) int { return cmp.Compare(a.RiskLevel, b.RiskLevel) },
	"totalDeposit":     func(a, b domain.AtRiskUser) int { return cmp.Compare(a.TotalDeposit, b.TotalDeposit) },
	"totalBets":        func(a, b domain.AtRiskUser) int { return cmp.Compare(a.TotalBets, b.TotalBets) },
	"grossRevenue":     func(a, b domain.AtRiskUser) int { return cmp.Compare(a.GrossRevenue, b.GrossRevenue) },
	"netProfit":        func(a, b domain.AtRiskUser) int { return cmp.Compare(a.NetProfit, b.NetProfit) },
	"payoutPercentage": func(a, b domain.AtRiskUser) int { return cmp.Compare(a.PayoutPercentage, b.PayoutPercentage) },
	"daysAtRisk":       func(a, b domain.AtRiskUser) int { return cmp.Compare(a.DaysAtRisk, b.DaysAtRisk) },
}

// Sort returns a stably sorted copy. An unknown key keeps the input order;
// any dir other than "desc" sorts ascending.
func Sort(users []domain.AtRiskUser, key, dir string) []domain.AtRiskUser {
	out := slices.Clone(users)
	compare, ok := sortKeys[key]
	if !ok {
		return out
	}
	if dir == "desc" {
		slices.SortStableFunc(out, func(a, b domain.AtRiskUser) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(out, compare)
	}
	return out
}
