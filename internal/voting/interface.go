package voting

import (
	"context"
	"tally/pkg/domain"
)

// Tracker enforces the community vote quota: every identity may vote for at
// most Quota distinct projects, and at most once per project.
//
//go:generate mockgen -package mockvoting -source=interface.go -destination=mock/mockvoting.go *
type Tracker interface {
	// ReserveVote records a vote of identity for projectID. It returns nil on
	// success, or an error of kind serrors.ErrQuotaExceeded,
	// serrors.ErrDuplicateVote, serrors.ErrNotFound, serrors.ErrBadRequest or
	// serrors.ErrTransientConflict.
	ReserveVote(ctx context.Context, identity domain.VoterIdentity, projectID domain.ProjectID) error
	// Stats returns how many votes identity has cast and has left.
	Stats(ctx context.Context, identity domain.VoterIdentity) (domain.VoteStats, error)
}
