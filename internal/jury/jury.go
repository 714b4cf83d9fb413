// Package jury validates judge score submissions and reduces jury scores to
// weighted per-project results.
package jury

import (
	"context"
	"fmt"
	"tally/pkg/domain"
	"tally/pkg/logger"
	"tally/pkg/serrors"
	"tally/pkg/storage"

	"go.uber.org/zap"
)

type service struct {
	storage storage.Storage
}

// New creates a Service backed by the provided storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}

// SubmitScores validates inputs against the criteria and atomically replaces
// the judge's previous scores on the project. The last submission wins.
func (s *service) SubmitScores(ctx context.Context,
	judgeID domain.JudgeID,
	projectID domain.ProjectID,
	inputs []ScoreInput) ([]domain.Score, error) {
	if len(inputs) == 0 {
		return nil, serrors.With(serrors.ErrValidation, "at least one score is required")
	}

	seen := make(map[domain.CriterionID]bool, len(inputs))
	for _, in := range inputs {
		if seen[in.CriterionID] {
			return nil, serrors.With(serrors.ErrValidation, "criterion %s is scored more than once", in.CriterionID)
		}
		seen[in.CriterionID] = true
	}

	ctx = logger.WithFields(ctx,
		zap.String("judgeID", judgeID.String()),
		zap.String("projectID", projectID.String()))

	var stored []domain.Score
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		judge, err := tx.JudgeByID(ctx, judgeID)
		if err != nil {
			return fmt.Errorf("could not get judge: %w", err)
		}
		if judge == nil {
			return serrors.With(serrors.ErrNotFound, "judge not found")
		}

		project, err := tx.ProjectByID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("could not get project: %w", err)
		}
		if project == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}

		criteria, err := tx.Criteria(ctx)
		if err != nil {
			return fmt.Errorf("could not get criteria: %w", err)
		}
		byID := domain.CriteriaByID(criteria)

		scores := make([]domain.Score, 0, len(inputs))
		for _, in := range inputs {
			criterion, ok := byID[in.CriterionID]
			if !ok {
				return serrors.With(serrors.ErrNotFound, "criterion %s not found", in.CriterionID)
			}
			if in.Value < 1 || in.Value > criterion.MaxScore {
				return serrors.With(serrors.ErrValidation,
					"score for %q must be between 1 and %d", criterion.Name, criterion.MaxScore)
			}

			scores = append(scores, domain.Score{
				JudgeID:     judgeID,
				ProjectID:   projectID,
				CriterionID: in.CriterionID,
				Value:       in.Value,
				Comment:     in.Comment,
			})
		}

		stored, err = tx.ReplaceJudgeScores(ctx, judgeID, projectID, scores)
		if err != nil {
			return fmt.Errorf("could not replace scores: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit scores: %w", err)
	}

	logger.Info(ctx, "scores submitted", zap.Int("count", len(stored)))

	return stored, nil
}

// JudgeScores returns the scores judgeID gave on projectID.
func (s *service) JudgeScores(ctx context.Context,
	judgeID domain.JudgeID,
	projectID domain.ProjectID) ([]domain.Score, error) {
	scores, err := s.storage.JudgeScores(ctx, judgeID, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get judge scores: %w", err)
	}

	return scores, nil
}
