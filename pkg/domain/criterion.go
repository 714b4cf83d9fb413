package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinCriterionWeight and MaxCriterionWeight bound the weight of a single criterion.
	MinCriterionWeight = 1
	MaxCriterionWeight = 100
	// TotalCriteriaWeight is the expected sum of all criterion weights. A
	// different sum is reported but never rejected.
	TotalCriteriaWeight = 100
)

// CriterionID uniquely identifies a judging criterion.
type CriterionID uuid.UUID

func (id CriterionID) String() string { return uuid.UUID(id).String() }

// Criterion is a weighted axis projects are scored on.
type Criterion struct {
	ID          CriterionID `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	// Weight is the share, in percent, this criterion contributes to the
	// weighted score. It is in [1, 100].
	Weight int `json:"weight"`
	// MaxScore is the highest value a judge may give on this criterion.
	MaxScore  int       `json:"maxScore"`
	CreatedAt time.Time `json:"createdAt"`
}

// WeightReport describes whether the configured criteria weights add up to
// TotalCriteriaWeight.
type WeightReport struct {
	Total    int  `json:"total"`
	Balanced bool `json:"balanced"`
}

// CriteriaByID indexes criteria by their ID.
func CriteriaByID(criteria []Criterion) map[CriterionID]Criterion {
	out := make(map[CriterionID]Criterion, len(criteria))
	for _, c := range criteria {
		out[c.ID] = c
	}

	return out
}
