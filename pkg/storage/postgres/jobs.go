package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job through the database/sql driver.
//
// Inside a transaction the job is written with InsertTx, so it only becomes
// visible to workers once the transaction commits together with whatever row
// the job refers to (e.g. a pending export). Outside a transaction the job is
// inserted right away. The returned bool is false when River skipped the
// insert as a duplicate of a unique job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		client, cErr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cErr := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("unsupported executor %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert job: %w", mapError(err))
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
