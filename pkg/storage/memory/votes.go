package memory

import (
	"context"
	"fmt"
	"tally/pkg/domain"
	"tally/pkg/storage"
)

// LockVoter acquires the identity's lock for the rest of the transaction.
// Locking an identity the transaction already holds is a no-op.
func (m *Memory) LockVoter(ctx context.Context, identity domain.VoterIdentity) error {
	if m.tx == nil {
		return storage.ErrNotInTx
	}

	m.tx.mu.Lock()
	_, held := m.tx.locked[identity]
	done := m.tx.done
	m.tx.mu.Unlock()
	if done {
		return errTxDone
	}
	if held {
		return nil
	}

	m.state.locksMu.Lock()
	ch, ok := m.state.voterLocks[identity]
	if !ok {
		ch = make(chan struct{}, 1)
		m.state.voterLocks[identity] = ch
	}
	m.state.locksMu.Unlock()

	if m.options.LockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.options.LockTimeout)
		defer cancel()
	}

	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("could not lock voter %q: %w: %w", identity, storage.ErrLockTimeout, ctx.Err())
	}

	m.tx.mu.Lock()
	defer m.tx.mu.Unlock()
	if m.tx.done {
		<-ch

		return errTxDone
	}
	m.tx.locked[identity] = ch

	return nil
}

// InsertVote appends a vote. The pair is checked against committed and
// pending votes right away and again on commit.
func (m *Memory) InsertVote(_ context.Context, vote domain.VoteRecord) error {
	if vote.CastAt.IsZero() {
		vote.CastAt = m.options.Now()
	}
	key := voteKey{identity: vote.Identity, projectID: vote.ProjectID}

	conflict := func(s *state) error {
		if _, ok := s.votes[key]; ok {
			return fmt.Errorf("could not insert vote: %w", storage.ErrConflict)
		}
		if _, ok := s.projects[vote.ProjectID]; !ok {
			return fmt.Errorf("could not insert vote: unknown project %s", vote.ProjectID)
		}

		return nil
	}

	if m.tx != nil && !m.readOnly {
		var err error
		m.read(func(s *state) { err = conflict(s) })
		if err != nil {
			return err
		}

		m.tx.mu.Lock()
		for _, pending := range m.tx.votes {
			if pending.Identity == vote.Identity && pending.ProjectID == vote.ProjectID {
				m.tx.mu.Unlock()

				return fmt.Errorf("could not insert vote: %w", storage.ErrConflict)
			}
		}
		m.tx.votes = append(m.tx.votes, vote)
		m.tx.mu.Unlock()
	}

	return m.exec(write{
		check: conflict,
		apply: func(s *state) {
			s.votes[key] = vote
			s.voteOrder = append(s.voteOrder, key)
		},
	})
}

// pendingVotes returns a copy of the votes buffered by the current tx.
func (m *Memory) pendingVotes() []domain.VoteRecord {
	if m.tx == nil {
		return nil
	}

	m.tx.mu.Lock()
	defer m.tx.mu.Unlock()

	return append([]domain.VoteRecord(nil), m.tx.votes...)
}

func (m *Memory) CountVotesByIdentity(ctx context.Context, identity domain.VoterIdentity) (int, error) {
	voted, err := m.ProjectsVotedBy(ctx, identity)
	if err != nil {
		return 0, err
	}

	return len(voted), nil
}

func (m *Memory) ProjectsVotedBy(_ context.Context, identity domain.VoterIdentity) ([]domain.ProjectID, error) {
	out := []domain.ProjectID{}
	m.read(func(s *state) {
		for _, key := range s.voteOrder {
			if key.identity == identity {
				out = append(out, key.projectID)
			}
		}
	})
	for _, vote := range m.pendingVotes() {
		if vote.Identity == identity {
			out = append(out, vote.ProjectID)
		}
	}

	return out, nil
}

func (m *Memory) VoteCountsByProject(_ context.Context) (map[domain.ProjectID]int, error) {
	out := map[domain.ProjectID]int{}
	m.read(func(s *state) {
		for key := range s.votes {
			out[key.projectID]++
		}
	})
	for _, vote := range m.pendingVotes() {
		out[vote.ProjectID]++
	}

	return out, nil
}
