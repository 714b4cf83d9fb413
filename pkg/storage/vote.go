package storage

import (
	"context"
	"tally/pkg/domain"
)

// VoteStorage is the append-only ledger of community votes. There are no
// update or delete operations: the number of votes of an identity only grows.
type VoteStorage interface {
	// LockVoter takes an exclusive lock on the given identity for the rest of
	// the surrounding transaction, registering the identity on first use.
	// Concurrent transactions locking the same identity are serialized while
	// different identities never block each other. Returns ErrNotInTx outside
	// of a transaction and ErrLockTimeout when the lock is not acquired in time.
	LockVoter(ctx context.Context, identity domain.VoterIdentity) error
	// InsertVote appends a vote to the ledger. It returns ErrConflict when the
	// identity already voted for the project.
	InsertVote(ctx context.Context, vote domain.VoteRecord) error
	// CountVotesByIdentity returns how many votes the identity has cast.
	CountVotesByIdentity(ctx context.Context, identity domain.VoterIdentity) (int, error)
	// ProjectsVotedBy returns the projects the identity voted for, oldest first.
	ProjectsVotedBy(ctx context.Context, identity domain.VoterIdentity) ([]domain.ProjectID, error)
	// VoteCountsByProject returns the number of votes per project. Projects
	// without votes are absent.
	VoteCountsByProject(ctx context.Context) (map[domain.ProjectID]int, error)
}
