package domain

import "time"

// Score is a single judge's value for one project on one criterion. There is
// exactly one Score per (JudgeID, ProjectID, CriterionID).
type Score struct {
	JudgeID     JudgeID     `json:"judgeId"`
	ProjectID   ProjectID   `json:"projectId"`
	CriterionID CriterionID `json:"criterionId"`
	// Value is in [1, MaxScore] of the referenced criterion.
	Value     int       `json:"value"`
	Comment   string    `json:"comment,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}
