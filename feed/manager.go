package feed

import (
	"context"
	"sync"
)

// Manager hands out one Session per actor. Sessions are created lazily
// on first use and filled immediately; cross-actor state is fully
// independent, so the registry lock covers only the map itself.
type Manager struct {
	mu       sync.Mutex
	sessions map[int]*Session

	source   ItemSource
	recorder *Recorder
}

func NewManager(source ItemSource, recorder *Recorder) *Manager {
	return &Manager{
		sessions: make(map[int]*Session),
		source:   source,
		recorder: recorder,
	}
}

// Session returns the actor's live session, creating and filling it on
// first use. A fetch failure on creation lands in the session's error
// state rather than being returned here; the caller reads it from the
// snapshot and retries through RequestMore.
func (m *Manager) Session(ctx context.Context, actorID int) *Session {
	m.mu.Lock()
	s, ok := m.sessions[actorID]
	if !ok {
		s = NewSession(actorID, m.source, m.recorder)
		m.sessions[actorID] = s
	}
	m.mu.Unlock()

	if !ok {
		_ = s.Reset(ctx)
	}
	return s
}

// Recorder exposes the shared recorder for out-of-session ledger
// operations such as unsaving from the saved-prayers list.
func (m *Manager) Recorder() *Recorder {
	return m.recorder
}

// Close drains the shared recorder.
func (m *Manager) Close() {
	m.recorder.Close()
}
