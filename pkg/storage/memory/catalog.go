package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"tally/pkg/domain"
	"tally/pkg/storage"

	"github.com/google/uuid"
)

func (m *Memory) StoreProject(_ context.Context, project domain.Project) (*domain.Project, error) {
	project.ID = domain.ProjectID(uuid.New())
	project.CreatedAt = m.options.Now()
	project.TeamMembers = append([]string{}, project.TeamMembers...)

	if err := m.exec(write{apply: func(s *state) {
		s.projects[project.ID] = project
	}}); err != nil {
		return nil, err
	}

	return &project, nil
}

func (m *Memory) ProjectByID(_ context.Context, id domain.ProjectID) (*domain.Project, error) {
	var (
		project domain.Project
		found   bool
	)
	m.read(func(s *state) {
		project, found = s.projects[id]
	})
	if !found {
		return nil, nil
	}

	return &project, nil
}

func (m *Memory) Projects(_ context.Context) ([]domain.Project, error) {
	out := []domain.Project{}
	m.read(func(s *state) {
		for _, p := range s.projects {
			out = append(out, p)
		}
	})
	slices.SortFunc(out, func(a, b domain.Project) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID.String(), b.ID.String()))
	})

	return out, nil
}

func (m *Memory) StoreJudge(_ context.Context, judge domain.Judge) (*domain.Judge, error) {
	judge.ID = domain.JudgeID(uuid.New())
	judge.CreatedAt = m.options.Now()

	emailTaken := func(s *state) error {
		for _, j := range s.judges {
			if j.Email == judge.Email {
				return fmt.Errorf("could not store judge: %w", storage.ErrConflict)
			}
		}

		return nil
	}

	if m.tx != nil {
		var err error
		m.read(func(s *state) { err = emailTaken(s) })
		if err != nil {
			return nil, err
		}
	}

	if err := m.exec(write{
		check: emailTaken,
		apply: func(s *state) { s.judges[judge.ID] = judge },
	}); err != nil {
		return nil, err
	}

	return &judge, nil
}

func (m *Memory) JudgeByID(_ context.Context, id domain.JudgeID) (*domain.Judge, error) {
	var (
		judge domain.Judge
		found bool
	)
	m.read(func(s *state) {
		judge, found = s.judges[id]
	})
	if !found {
		return nil, nil
	}

	return &judge, nil
}

func (m *Memory) Judges(_ context.Context) ([]domain.Judge, error) {
	out := []domain.Judge{}
	m.read(func(s *state) {
		for _, j := range s.judges {
			out = append(out, j)
		}
	})
	slices.SortFunc(out, func(a, b domain.Judge) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID.String(), b.ID.String()))
	})

	return out, nil
}

// criterionNameTaken rejects a name already used by another criterion.
func criterionNameTaken(id domain.CriterionID, name string) func(s *state) error {
	return func(s *state) error {
		for _, c := range s.criteria {
			if c.ID != id && c.Name == name {
				return fmt.Errorf("could not store criterion: %w", storage.ErrConflict)
			}
		}

		return nil
	}
}

func (m *Memory) StoreCriterion(_ context.Context, criterion domain.Criterion) (*domain.Criterion, error) {
	criterion.ID = domain.CriterionID(uuid.New())
	criterion.CreatedAt = m.options.Now()

	if err := m.exec(write{
		check: criterionNameTaken(criterion.ID, criterion.Name),
		apply: func(s *state) { s.criteria[criterion.ID] = criterion },
	}); err != nil {
		return nil, err
	}

	return &criterion, nil
}

func (m *Memory) UpdateCriterion(ctx context.Context,
	id domain.CriterionID,
	updates storage.CriterionUpdates) (*domain.Criterion, error) {
	current, err := m.CriterionByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	updated := *current
	updated.Name = updates.Name
	updated.Description = updates.Description
	updated.Weight = updates.Weight
	updated.MaxScore = updates.MaxScore

	if err := m.exec(write{
		check: criterionNameTaken(id, updated.Name),
		apply: func(s *state) {
			if _, ok := s.criteria[id]; ok {
				s.criteria[id] = updated
			}
		},
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteCriterion removes the criterion and every score given on it.
func (m *Memory) DeleteCriterion(ctx context.Context, id domain.CriterionID) (bool, error) {
	current, err := m.CriterionByID(ctx, id)
	if err != nil || current == nil {
		return false, err
	}

	if err := m.exec(write{apply: func(s *state) {
		delete(s.criteria, id)
		for key := range s.scores {
			if key.criterionID == id {
				delete(s.scores, key)
			}
		}
	}}); err != nil {
		return false, err
	}

	return true, nil
}

func (m *Memory) CriterionByID(_ context.Context, id domain.CriterionID) (*domain.Criterion, error) {
	var (
		criterion domain.Criterion
		found     bool
	)
	m.read(func(s *state) {
		criterion, found = s.criteria[id]
	})
	if !found {
		return nil, nil
	}

	return &criterion, nil
}

func (m *Memory) Criteria(_ context.Context) ([]domain.Criterion, error) {
	out := []domain.Criterion{}
	m.read(func(s *state) {
		for _, c := range s.criteria {
			out = append(out, c)
		}
	})
	slices.SortFunc(out, func(a, b domain.Criterion) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID.String(), b.ID.String()))
	})

	return out, nil
}
