package memory

import (
	"cmp"
	"context"
	"slices"
	"tally/pkg/domain"
)

func (m *Memory) ReplaceJudgeScores(_ context.Context,
	judgeID domain.JudgeID,
	projectID domain.ProjectID,
	scores []domain.Score) ([]domain.Score, error) {
	now := m.options.Now()
	stored := make([]domain.Score, len(scores))
	for i, score := range scores {
		score.UpdatedAt = now
		stored[i] = score
	}

	if err := m.exec(write{apply: func(s *state) {
		for key := range s.scores {
			if key.judgeID == judgeID && key.projectID == projectID {
				delete(s.scores, key)
			}
		}
		for _, score := range stored {
			s.scores[scoreKey{
				judgeID:     score.JudgeID,
				projectID:   score.ProjectID,
				criterionID: score.CriterionID,
			}] = score
		}
	}}); err != nil {
		return nil, err
	}

	if len(stored) == 0 {
		return nil, nil
	}

	return stored, nil
}

func (m *Memory) JudgeScores(_ context.Context,
	judgeID domain.JudgeID,
	projectID domain.ProjectID) ([]domain.Score, error) {
	out := []domain.Score{}
	m.read(func(s *state) {
		for key, score := range s.scores {
			if key.judgeID == judgeID && key.projectID == projectID {
				out = append(out, score)
			}
		}
	})
	sortScores(out)

	return out, nil
}

func (m *Memory) Scores(_ context.Context) ([]domain.Score, error) {
	out := []domain.Score{}
	m.read(func(s *state) {
		for _, score := range s.scores {
			out = append(out, score)
		}
	})
	sortScores(out)

	return out, nil
}

func sortScores(scores []domain.Score) {
	slices.SortFunc(scores, func(a, b domain.Score) int {
		return cmp.Or(
			cmp.Compare(a.ProjectID.String(), b.ProjectID.String()),
			cmp.Compare(a.CriterionID.String(), b.CriterionID.String()),
			cmp.Compare(a.JudgeID.String(), b.JudgeID.String()),
		)
	})
}
