package domain

// AggregateResult is the derived jury outcome for a single project. It is
// recomputed from scores on every read and never stored.
type AggregateResult struct {
	ProjectID ProjectID `json:"projectId"`
	// WeightedScore is in [0, 100] when weights sum to 100.
	WeightedScore float64 `json:"weightedScore"`
	// PerCriterionAverage maps a criterion name to the mean value judges gave
	// on it. Criteria nobody scored are absent.
	PerCriterionAverage map[string]float64 `json:"perCriterionAverage"`
	// Rank is 1-based. Equal scores share a rank.
	Rank int `json:"rank"`
}

// CommunityResult is the derived community outcome for a single project.
type CommunityResult struct {
	ProjectID ProjectID `json:"projectId"`
	VoteCount int       `json:"voteCount"`
	Rank      int       `json:"rank"`
}
