package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/domain/repository"
	"github.com/bnema/rclayout/internal/logging"
)

const (
	getViewQuery = `SELECT data FROM views WHERE preset_id = ?`

	upsertViewQuery = `INSERT INTO views (preset_id, data, tab_count, widget_count, updated_at, revision)
VALUES (?, ?, ?, ?, ?, 1)
ON CONFLICT(preset_id) DO UPDATE SET
    data = excluded.data,
    tab_count = excluded.tab_count,
    widget_count = excluded.widget_count,
    updated_at = excluded.updated_at,
    revision = views.revision + 1`

	deleteViewQuery = `DELETE FROM views WHERE preset_id = ?`

	listViewsQuery = `SELECT preset_id, tab_count, widget_count, revision, updated_at
FROM views ORDER BY updated_at DESC, preset_id`
)

type viewRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewViewRepository creates a SQLite-backed view repository.
func NewViewRepository(db *sql.DB) repository.ViewRepository {
	return &viewRepo{db: db, now: time.Now}
}

func (r *viewRepo) Get(ctx context.Context, presetID string) (*entity.View, error) {
	var data string
	err := r.db.QueryRowContext(ctx, getViewQuery, presetID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	view := entity.NewView()
	if err := json.Unmarshal([]byte(data), view); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("preset", presetID).
			Msg("failed to unmarshal view")
		return nil, fmt.Errorf("decode view %q: %w", presetID, err)
	}
	if view.Tabs == nil {
		view.Tabs = make([]*entity.Tab, 0)
	}
	return view, nil
}

func (r *viewRepo) Save(ctx context.Context, presetID string, view *entity.View) error {
	if view == nil {
		return errors.New("view cannot be nil")
	}
	log := logging.FromContext(ctx)

	data, err := json.Marshal(view)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal view")
		return err
	}

	log.Debug().
		Str("preset", presetID).
		Int("tab_count", len(view.Tabs)).
		Int("widget_count", view.WidgetCount()).
		Msg("saving view")

	_, err = r.db.ExecContext(ctx, upsertViewQuery,
		presetID,
		string(data),
		int64(len(view.Tabs)),
		int64(view.WidgetCount()),
		r.now().UTC(),
	)
	return err
}

func (r *viewRepo) Delete(ctx context.Context, presetID string) error {
	logging.FromContext(ctx).Debug().Str("preset", presetID).Msg("deleting view")
	_, err := r.db.ExecContext(ctx, deleteViewQuery, presetID)
	return err
}

func (r *viewRepo) List(ctx context.Context) ([]repository.ViewSummary, error) {
	rows, err := r.db.QueryContext(ctx, listViewsQuery)
	if err != nil {
		return nil, err
	}
	items, scanErr := scanViewSummaries(rows)
	closeErr := rows.Close()
	if scanErr != nil {
		return nil, scanErr
	}
	if closeErr != nil {
		return nil, closeErr
	}
	return items, nil
}

func scanViewSummaries(rows *sql.Rows) ([]repository.ViewSummary, error) {
	items := make([]repository.ViewSummary, 0)
	for rows.Next() {
		var (
			s             repository.ViewSummary
			tabs, widgets int64
			updated       sql.NullTime
		)
		if err := rows.Scan(&s.PresetID, &tabs, &widgets, &s.Revision, &updated); err != nil {
			return nil, err
		}
		s.TabCount = int(tabs)
		s.WidgetCount = int(widgets)
		if updated.Valid {
			s.UpdatedAt = updated.Time
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
