package feed

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/SaintCentral/models"
)

// State is the lifecycle of one browsing session.
type State string

const (
	StateLoading   State = "loading"
	StateReady     State = "ready"
	StateExhausted State = "exhausted"
	StateError     State = "error"
)

// Session is one continuous run of feed browsing by one actor: the
// current item, the forward pending queue, the backward history stack,
// and the set of ids already surfaced this session. Every method
// serializes on an internal mutex; a session must never be shared
// between actors.
type Session struct {
	mu sync.Mutex

	actorID   int
	source    ItemSource
	recorder  *Recorder
	batchSize int
	rng       *rand.Rand
	onChange  func(State)

	state      State
	lastErr    error
	current    *models.PrayerItem
	pending    []models.PrayerItem
	history    []models.PrayerItem
	seenIDs    map[int]struct{}
	hasMore    bool
	batchTotal int
}

// Snapshot is the read-only view the presentation layer renders from.
type Snapshot struct {
	State     State              `json:"state"`
	Current   *models.PrayerItem `json:"current"`
	Progress  string             `json:"progress"`
	CanGoBack bool               `json:"canGoBack"`
	HasMore   bool               `json:"hasMore"`
	Error     string             `json:"error,omitempty"`
}

func NewSession(actorID int, source ItemSource, recorder *Recorder) *Session {
	return &Session{
		actorID:   actorID,
		source:    source,
		recorder:  recorder,
		batchSize: DefaultBatchSize,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		state:     StateLoading,
		seenIDs:   make(map[int]struct{}),
	}
}

// SetBatchSize overrides the default batch size. Call before the first
// fetch.
func (s *Session) SetBatchSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > 0 {
		s.batchSize = n
	}
}

// SetRand replaces the shuffle source. Call before the first fetch.
func (s *Session) SetRand(rng *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rng
}

// SetStateListener registers a callback fired on every state
// transition, while the session lock is held. Listeners must not call
// back into the session.
func (s *Session) SetStateListener(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *Session) setState(st State) {
	s.state = st
	if s.onChange != nil {
		s.onChange(st)
	}
}

// Reset discards all session state, including the seen-id set, and
// fetches a fresh batch. This is the only path that lets previously
// surfaced items come back.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seenIDs = make(map[int]struct{})
	s.current = nil
	s.pending = nil
	s.history = nil
	s.batchTotal = 0
	return s.fetchLocked(ctx)
}

// RequestMore fetches the next batch without forgetting what this
// session already showed. It is how callers act on exhaustion, and it
// doubles as the retry path out of the error state.
func (s *Session) RequestMore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchLocked(ctx)
}

// fetchLocked runs one queue-builder pass. On failure the previous
// queue, pointer, and seen-id set all survive so the actor keeps their
// place for the retry.
func (s *Session) fetchLocked(ctx context.Context) error {
	s.setState(StateLoading)

	items, err := fetchBatch(ctx, s.source, s.recorder.store, s.rng, s.actorID, s.seenIDs, s.batchSize)
	if err != nil {
		s.lastErr = err
		s.setState(StateError)
		return err
	}
	s.lastErr = nil

	if len(items) == 0 {
		s.current = nil
		s.pending = nil
		s.history = nil
		s.hasMore = false
		s.batchTotal = 0
		s.setState(StateExhausted)
		return nil
	}

	for _, item := range items {
		s.seenIDs[item.Prayer_Request_ID] = struct{}{}
	}
	head := items[0]
	s.current = &head
	s.pending = append([]models.PrayerItem(nil), items[1:]...)
	s.history = nil
	s.hasMore = true
	s.batchTotal = len(items)
	s.setState(StateReady)
	return nil
}

// Advance records kind against the current item and steps the pointer
// forward. The ledger write is dispatched fire-and-forget; advancement
// never waits on it, and a failed write never rolls the pointer back.
// Returns the new current item, or nil once the batch runs out. A
// no-op outside the Ready state.
func (s *Session) Advance(kind models.ActionKind) *models.PrayerItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady || s.current == nil {
		return nil
	}

	s.recorder.Record(s.current.Prayer_Request_ID, s.actorID, kind)
	return s.stepLocked()
}

// StepForward moves the pointer like Advance but records nothing. Used
// after a reaction was already recorded for the current item, so the
// step does not mint a second ledger row.
func (s *Session) StepForward() *models.PrayerItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady || s.current == nil {
		return nil
	}
	return s.stepLocked()
}

func (s *Session) stepLocked() *models.PrayerItem {
	s.history = append(s.history, *s.current)

	if len(s.pending) == 0 {
		s.current = nil
		s.setState(StateExhausted)
		return nil
	}
	next := s.pending[0]
	s.pending = s.pending[1:]
	s.current = &next
	return s.current
}

// GoBack steps to the previously shown item. Pure navigation: no ledger
// write, no deletion. Re-advancing past the same item with a different
// action leaves both records in the ledger, which is the intended
// multi-valued event-log behavior. Returns nil when there is no
// history.
func (s *Session) GoBack() *models.PrayerItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return nil
	}
	prev := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	if s.current != nil {
		s.pending = append([]models.PrayerItem{*s.current}, s.pending...)
	}
	s.current = &prev
	if s.state == StateExhausted {
		s.setState(StateReady)
	}
	return s.current
}

// React records a preset reaction for the current item without
// advancing; callers that treat a reaction like "prayed" advance
// separately.
func (s *Session) React(key string) error {
	kind, err := models.ReactionKind(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ErrNoCurrentItem
	}
	s.recorder.Record(s.current.Prayer_Request_ID, s.actorID, kind)
	return nil
}

// ToggleSave flips the saved record for the current item and reports
// the authoritative outcome as read from the ledger, not guessed from
// local state.
func (s *Session) ToggleSave(ctx context.Context) (bool, error) {
	s.mu.Lock()
	cur := s.current
	s.mu.Unlock()

	if cur == nil {
		return false, ErrNoCurrentItem
	}
	return s.recorder.ToggleSave(ctx, cur.Prayer_Request_ID, s.actorID)
}

// Current returns a copy of the item on deck, or nil.
func (s *Session) Current() *models.PrayerItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cur := *s.current
	return &cur
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) CanGoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history) > 0
}

// Progress renders the position within the current batch, e.g. "3 / 10".
func (s *Session) Progress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked()
}

func (s *Session) progressLocked() string {
	if s.batchTotal == 0 {
		return "0 / 0"
	}
	position := s.batchTotal - len(s.pending)
	if s.current == nil {
		position = s.batchTotal
	}
	return fmt.Sprintf("%d / %d", position, s.batchTotal)
}

// Snapshot captures the session under one lock acquisition.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:     s.state,
		Progress:  s.progressLocked(),
		CanGoBack: len(s.history) > 0,
		HasMore:   s.hasMore,
	}
	if s.current != nil {
		cur := *s.current
		snap.Current = &cur
	}
	if s.lastErr != nil {
		snap.Error = s.lastErr.Error()
	}
	return snap
}
