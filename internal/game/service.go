// Package game runs the hatchery for each player: one in-memory session per
// player, mutated under its lock and written back by a debounced saver.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/eggtype"
	"github.com/osse101/Daymon_Go/internal/event"
	"github.com/osse101/Daymon_Go/internal/hatch"
	"github.com/osse101/Daymon_Go/internal/logger"
	"github.com/osse101/Daymon_Go/internal/metrics"
	"github.com/osse101/Daymon_Go/internal/persist"
	"github.com/osse101/Daymon_Go/internal/repository"
	"github.com/osse101/Daymon_Go/internal/roster"
)

// Saver schedules session writes. Implemented by worker.SaveWorker.
type Saver interface {
	MarkDirty(userID string)
	FlushNow(ctx context.Context, userID string) error
	Pending(userID string) bool
}

// Service defines the hatchery operations
type Service interface {
	// Login returns the player with nickname, creating it on first use
	Login(ctx context.Context, nickname string) (*domain.Player, error)
	State(ctx context.Context, userID string) (*View, error)

	PlaceEgg(ctx context.Context, userID string, invIndex int) (*View, error)
	Navigate(ctx context.Context, userID, direction string) (*View, error)
	Tap(ctx context.Context, userID string) (*View, error)
	Dismiss(ctx context.Context, userID string) (*View, error)
	UnlockIncubator(ctx context.Context, userID string, slot int) (*View, error)
	ResetSlots(ctx context.Context, userID string) (*View, error)
	DeleteAllSlots(ctx context.Context, userID string) (*View, error)

	SanctuaryToField(ctx context.Context, userID string, index int) (*View, error)
	CareSnack(ctx context.Context, userID string) (*View, error)
	CarePlay(ctx context.Context, userID string) (*View, error)
	RenameField(ctx context.Context, userID, name string) (*View, error)

	// Debug controls, refused with ErrDebugUnavailable unless enabled
	AdjustHatch(ctx context.Context, userID string, hours float64) (*View, error)
	AdjustFieldGauge(ctx context.Context, userID string, kind roster.GaugeKind, delta float64) (*View, error)
	ResetIncubator(ctx context.Context, userID string) (*View, error)
	ResetField(ctx context.Context, userID string) (*View, error)
	ResetSanctuary(ctx context.Context, userID string) (*View, error)

	// SetVisibility flushes when the client hides and reloads when it returns
	SetVisibility(ctx context.Context, userID string, hidden bool) (*View, error)

	// Flush writes the session's current state; called by the saver
	Flush(ctx context.Context, userID string) error
	// RefreshEggTypes reloads egg_types overrides into the registry
	RefreshEggTypes(ctx context.Context) error
	// Sessions reports how many sessions are cached
	Sessions() int
}

// Config wires a Service
type Config struct {
	Repo          repository.Hatchery
	Registry      *eggtype.Registry
	Bus           event.Bus
	Saver         Saver
	SessionTTL    time.Duration
	SessionSize   int
	DebugControls bool

	// Optional; nil uses the wall clock, uuid.NewString and rand.IntN
	Now   func() time.Time
	NewID func() string
	PickN func(n int) int
}

type session struct {
	mu sync.Mutex
	// io serializes storage writes for the player; lock order is io then mu
	io sync.Mutex

	userID    string
	state     persist.State
	gesture   *hatch.Gesture
	persisted int
	unlocking bool
}

type service struct {
	repo     repository.Hatchery
	store    *persist.Store
	registry *eggtype.Registry
	engine   *hatch.Engine
	bus      event.Bus
	saver    Saver
	debug    bool

	now   func() time.Time
	newID func() string
	pickN func(n int) int

	sessions *expirable.LRU[string, *session]
	loadMu   sync.Mutex
	retired  sync.Map // userID -> *session evicted before its pending save ran
}

// NewService creates the hatchery service
func NewService(cfg Config) Service {
	s := &service{
		repo:     cfg.Repo,
		store:    persist.NewStore(cfg.Repo),
		registry: cfg.Registry,
		engine:   hatch.NewEngine(cfg.Registry),
		bus:      cfg.Bus,
		saver:    cfg.Saver,
		debug:    cfg.DebugControls,
		now:      cfg.Now,
		newID:    cfg.NewID,
		pickN:    cfg.PickN,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.pickN == nil {
		s.pickN = rand.IntN
	}
	if s.bus == nil {
		s.bus = event.NewMemoryBus()
	}
	size := cfg.SessionSize
	if size <= 0 {
		size = 1
	}
	s.sessions = expirable.NewLRU[string, *session](size, s.onEvict, cfg.SessionTTL)
	return s
}

func (s *service) onEvict(userID string, sess *session) {
	metrics.ActiveSessions.Dec()
	if s.saver != nil && s.saver.Pending(userID) {
		s.retired.Store(userID, sess)
		logger.FromContext(context.Background()).Info(LogMsgSessionRetired, "user_id", userID)
	}
}

func (s *service) Sessions() int {
	return s.sessions.Len()
}

// session returns the cached session for userID, loading it from storage on a miss
func (s *service) session(ctx context.Context, userID string) (*session, error) {
	if sess, ok := s.sessions.Get(userID); ok {
		return sess, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if sess, ok := s.sessions.Get(userID); ok {
		return sess, nil
	}
	if v, ok := s.retired.LoadAndDelete(userID); ok {
		sess := v.(*session)
		s.add(sess)
		return sess, nil
	}

	state, count, err := s.store.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, domain.ErrSessionExpired
		}
		return nil, err
	}
	sess := &session{userID: userID, state: state, gesture: hatch.NewGesture(), persisted: count}
	s.add(sess)
	logger.FromContext(ctx).Info(LogMsgSessionLoaded, "user_id", userID, "rows", count)
	return sess, nil
}

func (s *service) add(sess *session) {
	s.sessions.Add(sess.userID, sess)
	metrics.ActiveSessions.Inc()
}

// lookup finds a live or retired session without loading
func (s *service) lookup(userID string) *session {
	if sess, ok := s.sessions.Peek(userID); ok {
		return sess
	}
	if v, ok := s.retired.Load(userID); ok {
		return v.(*session)
	}
	return nil
}

// mutate runs fn under the session lock and marks the session dirty when fn succeeds
func (s *service) mutate(ctx context.Context, userID string, fn func(sess *session, now time.Time) error) (*View, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.now()
	if err := fn(sess, now); err != nil {
		return nil, err
	}
	s.markDirty(userID)
	return s.view(sess, now), nil
}

func (s *service) markDirty(userID string) {
	if s.saver != nil {
		s.saver.MarkDirty(userID)
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func (s *service) requireDebug() error {
	if !s.debug {
		return domain.ErrDebugUnavailable
	}
	return nil
}

// Login returns the player with nickname, creating it on first use
func (s *service) Login(ctx context.Context, nickname string) (*domain.Player, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" || len(nickname) > MaxPlayerNicknameLength {
		return nil, fmt.Errorf("%w: nickname must be 1-%d characters", domain.ErrInvalidNickname, MaxPlayerNicknameLength)
	}

	player, err := s.repo.GetPlayerByNickname(ctx, nickname)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, err
	}

	player = &domain.Player{
		ID:       s.newID(),
		Nickname: nickname,
		Gold:     domain.StartingGold,
		Mood:     domain.DefaultMood,
	}
	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgPlayerCreated, "user_id", player.ID, "nickname", nickname)
	return player, nil
}

// State returns the derived view of the player's session
func (s *service) State(ctx context.Context, userID string) (*View, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(sess, s.now()), nil
}

// Flush writes the session state with the data-loss guard applied
func (s *service) Flush(ctx context.Context, userID string) error {
	sess := s.lookup(userID)
	if sess == nil {
		return nil
	}

	sess.io.Lock()
	defer sess.io.Unlock()

	sess.mu.Lock()
	if sess.unlocking {
		sess.mu.Unlock()
		logger.FromContext(ctx).Debug(LogMsgSaveDeferred, "user_id", userID)
		s.markDirty(userID)
		metrics.Saves.WithLabelValues(metrics.ResultSkipped).Inc()
		return nil
	}
	snapshot := sess.state.Clone()
	persisted := sess.persisted
	sess.mu.Unlock()

	start := time.Now()
	n, err := s.store.SaveSnapshot(ctx, snapshot, persisted)
	metrics.SaveDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, domain.ErrDataLossGuard):
		metrics.Saves.WithLabelValues(metrics.ResultSkipped).Inc()
		logger.FromContext(ctx).Warn(LogMsgSaveSkippedGuard, "user_id", userID, "persisted", persisted)
		s.publish(ctx, event.NewPersistenceEvent(event.SnapshotSaveSkipped, userID, err.Error()))
		s.retired.Delete(userID)
		return err
	case err != nil:
		metrics.Saves.WithLabelValues(metrics.ResultError).Inc()
		return err
	}

	metrics.Saves.WithLabelValues(metrics.ResultSuccess).Inc()
	s.retired.Delete(userID)
	sess.mu.Lock()
	sess.persisted = n
	sess.mu.Unlock()
	return nil
}

// RefreshEggTypes applies egg_types overrides; failures keep the current table
func (s *service) RefreshEggTypes(ctx context.Context) error {
	rows, err := s.repo.ListEggTypes(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("Egg type refresh failed, keeping current table", "error", err)
		return err
	}
	s.registry.ApplyRemoteOverrides(ctx, rows)
	return nil
}

// SetVisibility flushes on hide. On show, pending changes are flushed first and
// the session is reloaded from storage, so the last write wins. A change that
// is still waiting on the saver keeps the in-memory state.
func (s *service) SetVisibility(ctx context.Context, userID string, hidden bool) (*View, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.saver != nil {
		if err := s.saver.FlushNow(ctx, userID); err != nil && !errors.Is(err, domain.ErrDataLossGuard) {
			return nil, err
		}
	}
	if hidden {
		return s.State(ctx, userID)
	}

	sess.io.Lock()
	defer sess.io.Unlock()
	state, count, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.unlocking {
		// the unlock settles against the in-memory state; keep it
		return s.view(sess, s.now()), nil
	}
	if s.saver != nil && s.saver.Pending(userID) {
		logger.FromContext(ctx).Debug(LogMsgVisibleReloadSkipped, "user_id", userID)
		return s.view(sess, s.now()), nil
	}
	state.Board.Current = sess.state.Board.Current
	sess.state = state
	sess.persisted = count
	sess.gesture.Reset()
	logger.FromContext(ctx).Debug(LogMsgVisibleReload, "user_id", userID, "rows", count)
	return s.view(sess, s.now()), nil
}
