package domain

import "time"

// VoterIdentity is an opaque, stable token for a community voter. It is only
// ever compared for equality.
type VoterIdentity string

// VoteRecord is one community vote. No two records share (Identity,
// ProjectID) and records are never mutated or deleted once written.
type VoteRecord struct {
	Identity  VoterIdentity `json:"identity"`
	ProjectID ProjectID     `json:"projectId"`
	CastAt    time.Time     `json:"castAt"`
}

// VoteStats summarizes the votes an identity has cast.
type VoteStats struct {
	Identity        VoterIdentity `json:"identity"`
	TotalVotes      int           `json:"totalVotes"`
	Remaining       int           `json:"remaining"`
	VotedProjectIDs []ProjectID   `json:"votedProjectIds"`
}
