// Package ranking orders derived results into ranked tables.
//
// Rows are sorted by their value descending; equal values are ordered by
// project name and then by project ID so that the output is deterministic.
// Ranks follow standard competition ranking: equal values share a rank and
// the next distinct value skips as many places as were shared (1, 1, 3).
package ranking

import (
	"cmp"
	"slices"
	"tally/pkg/domain"
)

// RankJury orders jury results by WeightedScore and assigns ranks. Results
// of projects missing from projects are dropped.
func RankJury(results map[domain.ProjectID]domain.AggregateResult, projects []domain.Project) []domain.AggregateResult {
	byID := domain.ProjectsByID(projects)

	out := make([]domain.AggregateResult, 0, len(results))
	for id, res := range results {
		if _, ok := byID[id]; !ok {
			continue
		}
		out = append(out, res)
	}

	slices.SortFunc(out, func(a, b domain.AggregateResult) int {
		return cmp.Or(
			cmp.Compare(b.WeightedScore, a.WeightedScore),
			compareProjects(byID[a.ProjectID], byID[b.ProjectID]),
		)
	})
	assign(out,
		func(r domain.AggregateResult) float64 { return r.WeightedScore },
		func(r *domain.AggregateResult, rank int) { r.Rank = rank })

	return out
}

// RankCommunity orders projects by vote count and assigns ranks. Only
// projects present in both counts and projects are listed.
func RankCommunity(counts map[domain.ProjectID]int, projects []domain.Project) []domain.CommunityResult {
	byID := domain.ProjectsByID(projects)

	out := make([]domain.CommunityResult, 0, len(counts))
	for id, n := range counts {
		if _, ok := byID[id]; !ok {
			continue
		}
		out = append(out, domain.CommunityResult{ProjectID: id, VoteCount: n})
	}

	slices.SortFunc(out, func(a, b domain.CommunityResult) int {
		return cmp.Or(
			cmp.Compare(b.VoteCount, a.VoteCount),
			compareProjects(byID[a.ProjectID], byID[b.ProjectID]),
		)
	})
	assign(out,
		func(r domain.CommunityResult) int { return r.VoteCount },
		func(r *domain.CommunityResult, rank int) { r.Rank = rank })

	return out
}

func compareProjects(a, b domain.Project) int {
	return cmp.Or(
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.ID.String(), b.ID.String()),
	)
}

// assign sets competition ranks on rows already sorted by value.
func assign[T any, V comparable](rows []T, value func(T) V, set func(*T, int)) {
	rank := 0
	for i := range rows {
		if i == 0 || value(rows[i]) != value(rows[i-1]) {
			rank = i + 1
		}
		set(&rows[i], rank)
	}
}
