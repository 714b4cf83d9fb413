package storage

import (
	"context"
	"tally/pkg/domain"
)

// ScoreStorage persists jury scores.
type ScoreStorage interface {
	// ReplaceJudgeScores removes every score the judge gave on the project and
	// stores the provided ones instead. Callers run it inside a transaction so
	// the replacement is atomic.
	ReplaceJudgeScores(ctx context.Context,
		judgeID domain.JudgeID,
		projectID domain.ProjectID,
		scores []domain.Score) ([]domain.Score, error)
	// JudgeScores returns the scores the judge gave on the project.
	JudgeScores(ctx context.Context, judgeID domain.JudgeID, projectID domain.ProjectID) ([]domain.Score, error)
	// Scores returns every stored score.
	Scores(ctx context.Context) ([]domain.Score, error)
}
