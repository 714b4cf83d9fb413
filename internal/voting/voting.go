// Package voting implements the per-identity community vote quota.
package voting

import (
	"context"
	"errors"
	"fmt"
	"tally/internal/config"
	"tally/pkg/domain"
	"tally/pkg/logger"
	"tally/pkg/serrors"
	"tally/pkg/storage"
	"time"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// DefaultQuota is the number of votes an identity may cast.
const DefaultQuota = 3

// Options configure quota enforcement and how transient conflicts are retried.
type Options struct {
	// Quota is the number of distinct projects an identity may vote for.
	Quota int
	// MaxRetries is the number of retries after a transient conflict. The
	// reservation is attempted at most MaxRetries+1 times.
	MaxRetries int
	// RetryBaseDelay is the initial backoff between attempts.
	RetryBaseDelay time.Duration
	// AttemptTimeout bounds a single attempt, lock wait included. Zero
	// disables the per-attempt deadline.
	AttemptTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Quota:          cfg.Voting.Quota,
		MaxRetries:     cfg.Voting.MaxRetries,
		RetryBaseDelay: cfg.Voting.RetryBaseDelay,
		AttemptTimeout: cfg.Voting.AttemptTimeout,
	}
}

type tracker struct {
	options Options
	storage storage.Storage
	// outcomes counts reservations by outcome
	outcomes metric.Int64Counter
}

// New creates a Tracker backed by the provided storage.
func New(storage storage.Storage, options Options) (Tracker, error) {
	if options.Quota <= 0 {
		options.Quota = DefaultQuota
	}
	if options.MaxRetries < 0 {
		options.MaxRetries = 0
	}
	if options.RetryBaseDelay <= 0 {
		options.RetryBaseDelay = 10 * time.Millisecond
	}

	outcomes, err := otel.Meter(meterName).Int64Counter("tally_votes_total",
		metric.WithDescription("Vote reservations by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create votes counter: %w", err)
	}

	return &tracker{
		options:  options,
		storage:  storage,
		outcomes: outcomes,
	}, nil
}

const (
	meterName  = "tally/internal/voting"
	tracerName = "tally/internal/voting"
)

// ReserveVote runs one transaction per attempt: lock the identity, check the
// quota, check for a previous vote on the project and append the vote. Only
// transient conflicts are retried; business rejections are returned as is.
func (t *tracker) ReserveVote(ctx context.Context, identity domain.VoterIdentity, projectID domain.ProjectID) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "voting.ReserveVote")
	defer span.End()

	ctx = logger.WithFields(ctx,
		zap.String("identity", string(identity)),
		zap.String("projectID", projectID.String()))

	err := t.reserveWithRetry(ctx, identity, projectID)

	outcome := outcomeOf(err)
	t.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	span.SetAttributes(attribute.String("outcome", outcome))
	switch outcome {
	case outcomeAccepted:
		logger.Info(ctx, "vote recorded")
	case outcomeError, outcomeTransient:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx, "could not reserve vote", zap.Error(err))
	default:
		logger.Info(ctx, "vote rejected", zap.String("reason", outcome))
	}

	return err
}

func (t *tracker) reserveWithRetry(ctx context.Context,
	identity domain.VoterIdentity,
	projectID domain.ProjectID) error {
	if identity == "" {
		return serrors.With(serrors.ErrBadRequest, "voter identity is required")
	}

	backoff := retry.WithMaxRetries(uint64(t.options.MaxRetries), retry.NewExponential(t.options.RetryBaseDelay)) //nolint: gosec
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := t.reserveOnce(ctx, identity, projectID)
		if err != nil && t.isTransient(ctx, err) {
			logger.Debug(ctx, "transient conflict while reserving vote",
				zap.Int("attempt", attempt), zap.Error(err))

			return retry.RetryableError(err)
		}

		return err
	})
	if err == nil {
		return nil
	}

	if serrors.KindOf(err) != nil {
		return err
	}
	if t.isTransient(ctx, err) || ctx.Err() != nil {
		return serrors.Wrap(serrors.ErrTransientConflict, err,
			"vote could not be recorded after %d attempts, please retry", attempt)
	}

	return fmt.Errorf("could not reserve vote: %w", err)
}

// isTransient reports whether err may go away on a fresh attempt. An expired
// attempt deadline is transient as long as the caller's context is still alive.
func (t *tracker) isTransient(ctx context.Context, err error) bool {
	if storage.IsTransient(err) {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil
}

func (t *tracker) reserveOnce(ctx context.Context, identity domain.VoterIdentity, projectID domain.ProjectID) error {
	if t.options.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.options.AttemptTimeout)
		defer cancel()
	}

	err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		project, err := tx.ProjectByID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("could not get project: %w", err)
		}
		if project == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}

		// serializes every reservation of this identity until the tx ends
		if err := tx.LockVoter(ctx, identity); err != nil {
			return fmt.Errorf("could not lock voter: %w", err)
		}

		count, err := tx.CountVotesByIdentity(ctx, identity)
		if err != nil {
			return fmt.Errorf("could not count votes: %w", err)
		}
		if count >= t.options.Quota {
			return serrors.With(serrors.ErrQuotaExceeded, "all %d votes have already been used", t.options.Quota)
		}

		voted, err := tx.ProjectsVotedBy(ctx, identity)
		if err != nil {
			return fmt.Errorf("could not get voted projects: %w", err)
		}
		for _, id := range voted {
			if id == projectID {
				return serrors.With(serrors.ErrDuplicateVote, "already voted for this project")
			}
		}

		if err := tx.InsertVote(ctx, domain.VoteRecord{Identity: identity, ProjectID: projectID}); err != nil {
			return fmt.Errorf("could not insert vote: %w", err)
		}

		return nil
	})

	// the unique (identity, project) constraint backs up the check above
	if errors.Is(err, storage.ErrConflict) {
		return serrors.Wrap(serrors.ErrDuplicateVote, err, "already voted for this project")
	}

	return err
}

// Stats reads the identity's votes with read-committed semantics.
func (t *tracker) Stats(ctx context.Context, identity domain.VoterIdentity) (domain.VoteStats, error) {
	if identity == "" {
		return domain.VoteStats{}, serrors.With(serrors.ErrBadRequest, "voter identity is required")
	}

	voted, err := t.storage.ProjectsVotedBy(ctx, identity)
	if err != nil {
		return domain.VoteStats{}, fmt.Errorf("could not get voted projects: %w", err)
	}

	return domain.VoteStats{
		Identity:        identity,
		TotalVotes:      len(voted),
		Remaining:       max(t.options.Quota-len(voted), 0),
		VotedProjectIDs: voted,
	}, nil
}

const (
	outcomeAccepted  = "accepted"
	outcomeQuota     = "quota_exceeded"
	outcomeDuplicate = "duplicate"
	outcomeNotFound  = "not_found"
	outcomeInvalid   = "invalid"
	outcomeTransient = "transient_conflict"
	outcomeError     = "error"
)

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeAccepted
	case errors.Is(err, serrors.ErrQuotaExceeded):
		return outcomeQuota
	case errors.Is(err, serrors.ErrDuplicateVote):
		return outcomeDuplicate
	case errors.Is(err, serrors.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, serrors.ErrBadRequest):
		return outcomeInvalid
	case errors.Is(err, serrors.ErrTransientConflict):
		return outcomeTransient
	default:
		return outcomeError
	}
}
