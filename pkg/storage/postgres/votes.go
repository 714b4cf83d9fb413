package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"tally/pkg/domain"
	"tally/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	votersTable = "voters"
	votesTable  = "votes"
)

// LockVoter registers the identity in the voters table if needed and locks its
// row FOR UPDATE. The lock is held until the surrounding transaction ends, so
// every vote reservation of one identity is serialized on that row.
func (p *PgSQL) LockVoter(ctx context.Context, identity domain.VoterIdentity) error {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return storage.ErrNotInTx
	}

	if p.lockTimeout > 0 {
		// SET does not accept bind parameters; the value is an integer in ms.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = %d", p.lockTimeout.Milliseconds())
		if _, err := p.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not set lock timeout: %w", mapError(err))
		}
	}

	if _, err := p.Builder.Insert(votersTable).
		Rows(goqu.Record{"identity": string(identity)}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not register voter in pg: %w", mapError(err))
	}

	var locked string
	found, err := p.Builder.From(votersTable).
		Select("identity").
		Where(goqu.I("identity").Eq(string(identity))).
		ForUpdate(exp.Wait).
		Executor().ScanValContext(ctx, &locked)
	if err != nil {
		return fmt.Errorf("could not lock voter in pg: %w", mapError(err))
	}
	if !found {
		return fmt.Errorf("voter %q vanished while locking", identity)
	}

	return nil
}

func (p *PgSQL) InsertVote(ctx context.Context, vote domain.VoteRecord) error {
	rec := goqu.Record{
		"identity":   string(vote.Identity),
		"project_id": uuid.UUID(vote.ProjectID),
	}
	if !vote.CastAt.IsZero() {
		rec["cast_at"] = vote.CastAt
	}

	if _, err := p.Builder.Insert(votesTable).Rows(rec).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not insert vote into pg: %w", mapError(err))
	}

	return nil
}

func (p *PgSQL) CountVotesByIdentity(ctx context.Context, identity domain.VoterIdentity) (int, error) {
	count, err := p.Builder.From(votesTable).
		Where(goqu.I("identity").Eq(string(identity))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count votes in pg: %w", mapError(err))
	}

	return int(count), nil
}

func (p *PgSQL) ProjectsVotedBy(ctx context.Context, identity domain.VoterIdentity) ([]domain.ProjectID, error) {
	var ids []uuid.UUID
	if err := p.Builder.From(votesTable).
		Select("project_id").
		Where(goqu.I("identity").Eq(string(identity))).
		Order(goqu.I("cast_at").Asc(), goqu.I("project_id").Asc()).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch voted projects from pg: %w", mapError(err))
	}

	out := make([]domain.ProjectID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.ProjectID(id))
	}

	return out, nil
}

func (p *PgSQL) VoteCountsByProject(ctx context.Context) (map[domain.ProjectID]int, error) {
	var rows []struct {
		ProjectID uuid.UUID `db:"project_id"`
		Votes     int       `db:"votes"`
	}
	if err := p.Builder.From(votesTable).
		Select(goqu.I("project_id"), goqu.COUNT("*").As("votes")).
		GroupBy(goqu.I("project_id")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count votes per project in pg: %w", mapError(err))
	}

	out := make(map[domain.ProjectID]int, len(rows))
	for _, row := range rows {
		out[domain.ProjectID(row.ProjectID)] = row.Votes
	}

	return out, nil
}
