package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"tally/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgProject struct {
	ID          uuid.UUID       `db:"id"           goqu:"skipinsert"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	TeamMembers json.RawMessage `db:"team_members"`
	CreatedAt   time.Time       `db:"created_at"   goqu:"skipinsert"`
}

func (p *PgProject) ToDomain() (*domain.Project, error) {
	members := []string{}
	if len(p.TeamMembers) > 0 {
		if err := json.Unmarshal(p.TeamMembers, &members); err != nil {
			return nil, fmt.Errorf("could not unmarshal team members: %w", err)
		}
	}

	return &domain.Project{
		ID:          domain.ProjectID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		TeamMembers: members,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func (p *PgProject) FromDomain(project domain.Project) error {
	members := project.TeamMembers
	if members == nil {
		members = []string{}
	}
	b, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("could not marshal team members: %w", err)
	}

	*p = PgProject{
		ID:          uuid.UUID(project.ID),
		Name:        project.Name,
		Description: project.Description,
		TeamMembers: b,
		CreatedAt:   project.CreatedAt,
	}

	return nil
}

type PgJudge struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgJudge) ToDomain() *domain.Judge {
	return &domain.Judge{
		ID:        domain.JudgeID(p.ID),
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgJudge) FromDomain(judge domain.Judge) {
	*p = PgJudge{
		ID:        uuid.UUID(judge.ID),
		Name:      judge.Name,
		Email:     judge.Email,
		CreatedAt: judge.CreatedAt,
	}
}

type PgCriterion struct {
	ID          uuid.UUID `db:"id"          goqu:"skipinsert"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Weight      int       `db:"weight"`
	MaxScore    int       `db:"max_score"`
	CreatedAt   time.Time `db:"created_at"  goqu:"skipinsert"`
}

func (p *PgCriterion) ToDomain() *domain.Criterion {
	return &domain.Criterion{
		ID:          domain.CriterionID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Weight:      p.Weight,
		MaxScore:    p.MaxScore,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgCriterion) FromDomain(criterion domain.Criterion) {
	*p = PgCriterion{
		ID:          uuid.UUID(criterion.ID),
		Name:        criterion.Name,
		Description: criterion.Description,
		Weight:      criterion.Weight,
		MaxScore:    criterion.MaxScore,
		CreatedAt:   criterion.CreatedAt,
	}
}

type PgScore struct {
	JudgeID     uuid.UUID      `db:"judge_id"`
	ProjectID   uuid.UUID      `db:"project_id"`
	CriterionID uuid.UUID      `db:"criterion_id"`
	Value       int            `db:"value"`
	Comment     sql.NullString `db:"comment"`
	UpdatedAt   time.Time      `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgScore) ToDomain() domain.Score {
	return domain.Score{
		JudgeID:     domain.JudgeID(p.JudgeID),
		ProjectID:   domain.ProjectID(p.ProjectID),
		CriterionID: domain.CriterionID(p.CriterionID),
		Value:       p.Value,
		Comment:     p.Comment.String,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PgScore) FromDomain(score domain.Score) {
	*p = PgScore{
		JudgeID:     uuid.UUID(score.JudgeID),
		ProjectID:   uuid.UUID(score.ProjectID),
		CriterionID: uuid.UUID(score.CriterionID),
		Value:       score.Value,
		Comment: sql.NullString{
			String: score.Comment,
			Valid:  score.Comment != "",
		},
		UpdatedAt: score.UpdatedAt,
	}
}

type PgExport struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	Kind   string    `db:"kind"`
	Status string    `db:"status"`
	// NULL until the export is rendered
	Content []byte `db:"content" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgExport) ToDomain() *domain.Export {
	return &domain.Export{
		ID:        domain.ExportID(p.ID),
		Kind:      domain.ExportKind(p.Kind),
		Status:    domain.ExportStatus(p.Status),
		Content:   p.Content,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgExport) FromDomain(export domain.Export) {
	*p = PgExport{
		ID:       uuid.UUID(export.ID),
		Kind:     string(export.Kind),
		Status:   string(export.Status),
		Content:  export.Content,
		Attempts: export.Attempts,
		LastError: sql.NullString{
			String: export.LastError,
			Valid:  export.LastError != "",
		},
		CreatedAt: export.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  export.UpdatedAt,
			Valid: !export.UpdatedAt.IsZero(),
		},
	}
}

func pgScoresToDomain(scores []PgScore) []domain.Score {
	out := make([]domain.Score, 0, len(scores))
	for _, score := range scores {
		out = append(out, score.ToDomain())
	}

	return out
}
