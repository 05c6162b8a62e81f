// Package viewstore holds the committed view of the active preset and
// persists every commit through a repository.ViewRepository.
package viewstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/domain/repository"
	"github.com/bnema/rclayout/internal/logging"
	"github.com/bnema/rclayout/internal/ui/mainloop"
)

const notifyKey = "view-commit"

// ErrPresetRequired is returned when no preset id is configured.
var ErrPresetRequired = errors.New("preset id is required")

// Store implements port.ViewStore for one preset at a time.
type Store struct {
	repo repository.ViewRepository

	mu       sync.Mutex
	preset   string
	cached   *entity.View
	nextSub  int
	subs     map[int]func(*entity.View)
	notifier *mainloop.Coalescer
}

var _ port.ViewStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithPost routes change notifications through post. Bursts of commits
// queued before post runs collapse into one notification with the latest
// view. The default delivers synchronously.
func WithPost(post func(func())) Option {
	return func(s *Store) {
		s.notifier = mainloop.NewCoalescer(post)
	}
}

// New creates a store for preset backed by repo.
func New(repo repository.ViewRepository, preset string, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		preset: preset,
		subs:   make(map[int]func(*entity.View)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = mainloop.NewCoalescer(func(fn func()) { fn() })
	}
	return s
}

// Preset returns the active preset id.
func (s *Store) Preset() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preset
}

// Current returns a private copy of the committed view. A preset with no
// saved view yields an empty one.
func (s *Store) Current(ctx context.Context) (*entity.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return s.cached.Clone(), nil
}

func (s *Store) loadLocked(ctx context.Context) error {
	if s.cached != nil {
		return nil
	}
	if s.preset == "" {
		return ErrPresetRequired
	}
	view, err := s.repo.Get(ctx, s.preset)
	if err != nil {
		return fmt.Errorf("load view %q: %w", s.preset, err)
	}
	if view == nil {
		view = entity.NewView()
	}
	s.cached = view
	logging.FromContext(logging.WithPreset(ctx, s.preset)).Debug().
		Int("tabs", len(view.Tabs)).
		Msg("view loaded")
	return nil
}

// Commit persists view as the new committed tree and notifies subscribers.
// The store keeps its own copy.
func (s *Store) Commit(ctx context.Context, view *entity.View) error {
	if view == nil {
		return errors.New("view cannot be nil")
	}

	s.mu.Lock()
	if s.preset == "" {
		s.mu.Unlock()
		return ErrPresetRequired
	}
	committed := view.Clone()
	if err := s.repo.Save(ctx, s.preset, committed); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("save view %q: %w", s.preset, err)
	}
	s.cached = committed
	preset := s.preset
	s.mu.Unlock()

	logging.FromContext(logging.WithPreset(ctx, preset)).Trace().
		Int("tabs", len(committed.Tabs)).
		Int("widgets", committed.WidgetCount()).
		Msg("view committed")

	s.notify()
	return nil
}

// Subscribe registers fn for committed views and returns its cancel func.
// Subscribers receive their own copy.
func (s *Store) Subscribe(fn func(*entity.View)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.notifier.Post(notifyKey, func() {
		s.mu.Lock()
		view := s.cached
		subs := make([]func(*entity.View), 0, len(s.subs))
		for _, fn := range s.subs {
			subs = append(subs, fn)
		}
		s.mu.Unlock()

		for _, fn := range subs {
			fn(view.Clone())
		}
	})
}

// SwitchPreset makes preset active. Its view is read on next use.
func (s *Store) SwitchPreset(ctx context.Context, preset string) error {
	if preset == "" {
		return ErrPresetRequired
	}
	s.mu.Lock()
	s.preset = preset
	s.cached = nil
	s.mu.Unlock()

	logging.FromContext(logging.WithPreset(ctx, preset)).Info().Msg("preset switched")
	return nil
}

// Reload drops the cached view so the next read hits the repository.
func (s *Store) Reload() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// Close stops pending notifications.
func (s *Store) Close() {
	s.notifier.Close()
}
