package storage

import (
	"context"
	"tally/pkg/domain"
)

// CriterionUpdates describes the fields replaced on an existing criterion.
type CriterionUpdates struct {
	Name        string
	Description string
	Weight      int
	MaxScore    int
}

// CatalogStorage holds the reference data votes and scores point to:
// projects, judges and criteria. Lookups by ID return nil when the record
// does not exist.
type CatalogStorage interface {
	// StoreProject inserts a project and returns it with generated fields set.
	StoreProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	ProjectByID(ctx context.Context, ID domain.ProjectID) (*domain.Project, error)
	// Projects returns all projects ordered by name.
	Projects(ctx context.Context) ([]domain.Project, error)

	// StoreJudge inserts a judge. It returns ErrConflict when the email is taken.
	StoreJudge(ctx context.Context, judge domain.Judge) (*domain.Judge, error)
	JudgeByID(ctx context.Context, ID domain.JudgeID) (*domain.Judge, error)
	// Judges returns all judges ordered by name.
	Judges(ctx context.Context) ([]domain.Judge, error)

	StoreCriterion(ctx context.Context, criterion domain.Criterion) (*domain.Criterion, error)
	// UpdateCriterion replaces the mutable fields of a criterion and returns the
	// updated row, or nil when it does not exist.
	UpdateCriterion(ctx context.Context, ID domain.CriterionID, updates CriterionUpdates) (*domain.Criterion, error)
	// DeleteCriterion removes a criterion together with every score given on it.
	// It returns false when the criterion does not exist.
	DeleteCriterion(ctx context.Context, ID domain.CriterionID) (bool, error)
	CriterionByID(ctx context.Context, ID domain.CriterionID) (*domain.Criterion, error)
	// Criteria returns all criteria ordered by name.
	Criteria(ctx context.Context) ([]domain.Criterion, error)
}
