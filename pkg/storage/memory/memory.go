// Package memory provides an in-process implementation of storage.Storage.
//
// Transactions buffer their writes and apply them atomically on Commit,
// re-checking uniqueness at that point. LockVoter takes a per-identity lock
// that is held until Commit or Rollback, mirroring the row lock taken by the
// PostgreSQL backend. Reads inside a transaction observe committed data plus
// the transaction's own pending votes.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"tally/pkg/domain"
	"tally/pkg/storage"
	"time"

	"github.com/riverqueue/river"
)

var errTxDone = errors.New("tx already committed or rolled back")

// Options configures a Memory store.
type Options struct {
	// LockTimeout bounds how long LockVoter waits for an identity held by
	// another transaction. Zero waits until the context is done.
	LockTimeout time.Duration
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

type voteKey struct {
	identity  domain.VoterIdentity
	projectID domain.ProjectID
}

type scoreKey struct {
	judgeID     domain.JudgeID
	projectID   domain.ProjectID
	criterionID domain.CriterionID
}

// state is the committed data shared by a store and all of its transactions.
type state struct {
	mu sync.RWMutex

	projects map[domain.ProjectID]domain.Project
	judges   map[domain.JudgeID]domain.Judge
	criteria map[domain.CriterionID]domain.Criterion
	scores   map[scoreKey]domain.Score
	votes    map[voteKey]domain.VoteRecord
	// voteOrder keeps votes in insertion order
	voteOrder []voteKey
	exports   map[domain.ExportID]domain.Export
	jobs      []river.JobArgs

	locksMu    sync.Mutex
	voterLocks map[domain.VoterIdentity]chan struct{}
}

func newState() *state {
	return &state{
		projects:   map[domain.ProjectID]domain.Project{},
		judges:     map[domain.JudgeID]domain.Judge{},
		criteria:   map[domain.CriterionID]domain.Criterion{},
		scores:     map[scoreKey]domain.Score{},
		votes:      map[voteKey]domain.VoteRecord{},
		exports:    map[domain.ExportID]domain.Export{},
		voterLocks: map[domain.VoterIdentity]chan struct{}{},
	}
}

// clone copies the committed data. Locks are not copied.
func (s *state) clone() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := newState()
	for k, v := range s.projects {
		c.projects[k] = v
	}
	for k, v := range s.judges {
		c.judges[k] = v
	}
	for k, v := range s.criteria {
		c.criteria[k] = v
	}
	for k, v := range s.scores {
		c.scores[k] = v
	}
	for k, v := range s.votes {
		c.votes[k] = v
	}
	c.voteOrder = append(c.voteOrder, s.voteOrder...)
	for k, v := range s.exports {
		c.exports[k] = v
	}
	c.jobs = append(c.jobs, s.jobs...)

	return c
}

// write is a buffered mutation. check runs against the committed state right
// before apply, both under the write lock.
type write struct {
	check func(s *state) error
	apply func(s *state)
}

type tx struct {
	mu     sync.Mutex
	done   bool
	writes []write
	// votes are the pending votes, visible to reads of the same tx
	votes  []domain.VoteRecord
	locked map[domain.VoterIdentity]chan struct{}
}

// Memory implements storage.Storage and storage.TxStorage in memory.
type Memory struct {
	options  Options
	state    *state
	tx       *tx
	readOnly bool
}

var (
	_ storage.Storage   = (*Memory)(nil)
	_ storage.TxStorage = (*Memory)(nil)
)

// New creates an empty in-memory store.
func New(options Options) *Memory {
	if options.Now == nil {
		options.Now = time.Now
	}

	return &Memory{options: options, state: newState()}
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// Begin starts a new transaction.
func (m *Memory) Begin(_ context.Context) (storage.TxStorage, error) {
	if m.tx != nil || m.readOnly {
		return nil, storage.ErrAlreadyInTx
	}

	return &Memory{
		options: m.options,
		state:   m.state,
		tx:      &tx{locked: map[domain.VoterIdentity]chan struct{}{}},
	}, nil
}

// WithTx begins a transaction, runs cb and commits when cb succeeds.
func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	t, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(t); err != nil {
		_ = t.Rollback()

		return err
	}

	return t.Commit()
}

// WithSnapshot runs cb against a read-only copy of the committed state.
func (m *Memory) WithSnapshot(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	if m.tx != nil || m.readOnly {
		return storage.ErrAlreadyInTx
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return cb(&Memory{options: m.options, state: m.state.clone(), readOnly: true})
}

// Commit applies the buffered writes atomically. If any of them conflicts
// with data committed in the meantime nothing is applied.
func (m *Memory) Commit() error {
	if m.tx == nil {
		return storage.ErrNotInTx
	}

	m.tx.mu.Lock()
	defer m.tx.mu.Unlock()
	if m.tx.done {
		return errTxDone
	}
	m.tx.done = true
	defer m.releaseLocks()

	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	for _, w := range m.tx.writes {
		if w.check == nil {
			continue
		}
		if err := w.check(m.state); err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	}
	for _, w := range m.tx.writes {
		w.apply(m.state)
	}

	return nil
}

// Rollback discards the buffered writes.
func (m *Memory) Rollback() error {
	if m.tx == nil {
		return storage.ErrNotInTx
	}

	m.tx.mu.Lock()
	defer m.tx.mu.Unlock()
	if m.tx.done {
		return errTxDone
	}
	m.tx.done = true
	m.releaseLocks()

	return nil
}

// releaseLocks frees every voter lock held by the transaction. Callers hold tx.mu.
func (m *Memory) releaseLocks() {
	for identity, ch := range m.tx.locked {
		<-ch
		delete(m.tx.locked, identity)
	}
}

// exec applies w right away outside of a transaction, or buffers it.
func (m *Memory) exec(w write) error {
	if m.readOnly {
		return storage.ErrReadOnly
	}

	if m.tx != nil {
		m.tx.mu.Lock()
		defer m.tx.mu.Unlock()
		if m.tx.done {
			return errTxDone
		}
		m.tx.writes = append(m.tx.writes, w)

		return nil
	}

	m.state.mu.Lock()
	defer m.state.mu.Unlock()
	if w.check != nil {
		if err := w.check(m.state); err != nil {
			return err
		}
	}
	w.apply(m.state)

	return nil
}

// read runs fn under the read lock of the committed state.
func (m *Memory) read(fn func(s *state)) {
	m.state.mu.RLock()
	defer m.state.mu.RUnlock()
	fn(m.state)
}

// AddJob records the job. Jobs returns what was recorded.
func (m *Memory) AddJob(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
	if err := m.exec(write{apply: func(s *state) {
		s.jobs = append(s.jobs, args)
	}}); err != nil {
		return false, err
	}

	return true, nil
}

// Jobs returns the committed jobs in insertion order.
func (m *Memory) Jobs() []river.JobArgs {
	var out []river.JobArgs
	m.read(func(s *state) {
		out = append(out, s.jobs...)
	})

	return out
}
