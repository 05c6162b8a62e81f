// Package sqlite provides SQLite implementations of domain repositories.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/domain/repository"
)

// LazyViewRepository opens the database on the first repository call.
type LazyViewRepository struct {
	provider port.DatabaseProvider
	repo     repository.ViewRepository
	once     sync.Once
	initErr  error
}

// NewLazyViewRepository creates a lazy-loading view repository.
func NewLazyViewRepository(provider port.DatabaseProvider) repository.ViewRepository {
	return &LazyViewRepository{provider: provider}
}

func (r *LazyViewRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewViewRepository(db)
	})
	return r.initErr
}

func (r *LazyViewRepository) Get(ctx context.Context, presetID string) (*entity.View, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, presetID)
}

func (r *LazyViewRepository) Save(ctx context.Context, presetID string, view *entity.View) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, presetID, view)
}

func (r *LazyViewRepository) Delete(ctx context.Context, presetID string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, presetID)
}

func (r *LazyViewRepository) List(ctx context.Context) ([]repository.ViewSummary, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}
