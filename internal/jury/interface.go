package jury

import (
	"context"
	"tally/pkg/domain"
)

// ScoreInput is one criterion value in a judge's submission.
type ScoreInput struct {
	CriterionID domain.CriterionID
	Value       int
	Comment     string
}

//go:generate mockgen -package mockjury -source=interface.go -destination=mock/mockjury.go *
type Service interface {
	// SubmitScores replaces every score judgeID gave on projectID with inputs.
	SubmitScores(ctx context.Context,
		judgeID domain.JudgeID,
		projectID domain.ProjectID,
		inputs []ScoreInput) ([]domain.Score, error)
	JudgeScores(ctx context.Context, judgeID domain.JudgeID, projectID domain.ProjectID) ([]domain.Score, error)
}
