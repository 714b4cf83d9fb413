package jury

import "tally/pkg/domain"

// Aggregate reduces jury scores to one AggregateResult per project. Every
// project gets an entry, with a zero WeightedScore when nobody scored it.
//
// For each criterion a project received scores on, the mean value is
// normalized against the criterion's MaxScore and weighted by its Weight
// percentage; WeightedScore is the sum over those criteria scaled to 100.
// Criteria without scores are left out of both the sum and
// PerCriterionAverage. Scores that reference an unknown project or criterion
// are ignored. Rank is left unset.
func Aggregate(scores []domain.Score,
	criteria []domain.Criterion,
	projects []domain.Project) map[domain.ProjectID]domain.AggregateResult {
	type total struct {
		sum   int
		count int
	}

	known := domain.CriteriaByID(criteria)
	totals := make(map[domain.ProjectID]map[domain.CriterionID]*total, len(projects))
	for _, p := range projects {
		totals[p.ID] = map[domain.CriterionID]*total{}
	}

	for _, s := range scores {
		byCriterion, ok := totals[s.ProjectID]
		if !ok {
			continue
		}
		if _, ok := known[s.CriterionID]; !ok {
			continue
		}

		t := byCriterion[s.CriterionID]
		if t == nil {
			t = &total{}
			byCriterion[s.CriterionID] = t
		}
		t.sum += s.Value
		t.count++
	}

	results := make(map[domain.ProjectID]domain.AggregateResult, len(projects))
	for _, p := range projects {
		res := domain.AggregateResult{
			ProjectID:           p.ID,
			PerCriterionAverage: map[string]float64{},
		}

		var weighted float64
		// criteria order keeps the float sum stable between calls
		for _, c := range criteria {
			t := totals[p.ID][c.ID]
			if t == nil || t.count == 0 || c.MaxScore <= 0 {
				continue
			}

			avg := float64(t.sum) / float64(t.count)
			weighted += (avg / float64(c.MaxScore)) * (float64(c.Weight) / 100)
			res.PerCriterionAverage[c.Name] = avg
		}
		res.WeightedScore = 100 * weighted

		results[p.ID] = res
	}

	return results
}

// Orphans counts the scores Aggregate ignores because their project or
// criterion is unknown.
func Orphans(scores []domain.Score, criteria []domain.Criterion, projects []domain.Project) int {
	knownCriteria := domain.CriteriaByID(criteria)
	knownProjects := domain.ProjectsByID(projects)

	n := 0
	for _, s := range scores {
		_, okCriterion := knownCriteria[s.CriterionID]
		_, okProject := knownProjects[s.ProjectID]
		if !okCriterion || !okProject {
			n++
		}
	}

	return n
}
