package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"plasmodocking/pkg/logger"
)

// insertClient returns an insert-only river client. A nil db is valid for
// clients that only insert inside an existing transaction.
func insertClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}

// AddJob enqueues a river job. Inside a transaction the job is inserted with
// InsertTx and becomes visible on commit, so a row and the job processing it
// are stored atomically. Outside a transaction the insert is immediate.
// It reports false when a unique job with the same arguments already exists.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		client, cerr := insertClient(nil)
		if cerr != nil {
			return false, cerr
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cerr := insertClient(db)
		if cerr != nil {
			return false, cerr
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("unsupported database handle %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	logger.Debug(ctx, "job enqueued",
		zap.String("kind", args.Kind()),
		zap.Int64("jobID", res.Job.ID),
		zap.String("queue", res.Job.Queue),
		zap.Bool("duplicate", res.UniqueSkippedAsDuplicate))

	return !res.UniqueSkippedAsDuplicate, nil
}
