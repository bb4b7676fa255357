package game

import (
	"context"
	"time"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/roster"
)

func (s *service) SanctuaryToField(ctx context.Context, userID string, index int) (*View, error) {
	return s.mutate(ctx, userID, func(sess *session, now time.Time) error {
		_, err := sess.state.Roster.SanctuaryToField(index, now)
		return err
	})
}

func (s *service) CareSnack(ctx context.Context, userID string) (*View, error) {
	return s.careField(ctx, userID, roster.Snack)
}

func (s *service) CarePlay(ctx context.Context, userID string) (*View, error) {
	return s.careField(ctx, userID, roster.Play)
}

func (s *service) RenameField(ctx context.Context, userID, name string) (*View, error) {
	return s.careField(ctx, userID, func(m *domain.Monster, _ time.Time) (*domain.Monster, error) {
		return roster.Rename(m, name)
	})
}

func (s *service) AdjustFieldGauge(ctx context.Context, userID string, kind roster.GaugeKind, delta float64) (*View, error) {
	if err := s.requireDebug(); err != nil {
		return nil, err
	}
	return s.careField(ctx, userID, func(m *domain.Monster, now time.Time) (*domain.Monster, error) {
		return roster.AdjustGauge(m, kind, delta, now)
	})
}

// careField replaces the field monster with fn's result
func (s *service) careField(ctx context.Context, userID string, fn func(m *domain.Monster, now time.Time) (*domain.Monster, error)) (*View, error) {
	return s.mutate(ctx, userID, func(sess *session, now time.Time) error {
		next, err := fn(sess.state.Roster.Field, now)
		if err != nil {
			return err
		}
		sess.state.Roster.Field = next
		return nil
	})
}

// ResetField deletes the field monster
func (s *service) ResetField(ctx context.Context, userID string) (*View, error) {
	if err := s.requireDebug(); err != nil {
		return nil, err
	}
	return s.direct(ctx, userID, func(sess *session, _ time.Time) (int, error) {
		if sess.state.Roster.Field == nil {
			return 0, nil
		}
		if err := s.store.DeleteRecords(ctx, userID, []string{sess.state.Roster.Field.ID}); err != nil {
			return 0, err
		}
		sess.state.Roster.ResetField()
		return 1, nil
	})
}

// ResetSanctuary deletes every sanctuary monster
func (s *service) ResetSanctuary(ctx context.Context, userID string) (*View, error) {
	if err := s.requireDebug(); err != nil {
		return nil, err
	}
	return s.direct(ctx, userID, func(sess *session, _ time.Time) (int, error) {
		next := sess.state.Roster.Clone()
		ids := next.ResetSanctuary()
		if err := s.store.DeleteRecords(ctx, userID, ids); err != nil {
			return 0, err
		}
		sess.state.Roster = next
		return len(ids), nil
	})
}
