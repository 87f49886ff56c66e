package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/availarr/availarr/pkg/storage"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

// onDiskStatuses matches items claiming content on disk for a tier
func onDiskStatuses(col sqlite.ColumnString) sqlite.BoolExpression {
	return col.IN(
		sqlite.String(string(storage.MediaStatusAvailable)),
		sqlite.String(string(storage.MediaStatusPartiallyAvailable)),
	)
}

// CreateMediaItem stores a catalog entry and any attached seasons
func (s *SQLite) CreateMediaItem(ctx context.Context, item storage.MediaItem) (int64, error) {
	if item.Status == "" {
		item.Status = string(storage.MediaStatusUnknown)
	}
	if item.Status4k == "" {
		item.Status4k = string(storage.MediaStatusUnknown)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	insertColumns := table.MediaItem.MutableColumns.
		Except(table.MediaItem.CreatedAt, table.MediaItem.UpdatedAt)

	stmt := table.MediaItem.
		INSERT(insertColumns).
		MODEL(item.MediaItem).
		RETURNING(table.MediaItem.ID)

	result, err := stmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	inserted, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	for _, season := range item.Seasons {
		season.MediaItemID = int32(inserted)
		seasonStmt := table.Season.
			INSERT(table.Season.MutableColumns).
			MODEL(season)

		_, err = seasonStmt.ExecContext(ctx, tx)
		if err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	return inserted, tx.Commit()
}

// GetMediaItem fetches a catalog entry by id, seasons included for shows
func (s *SQLite) GetMediaItem(ctx context.Context, id int64) (*storage.MediaItem, error) {
	stmt := table.MediaItem.
		SELECT(table.MediaItem.AllColumns).
		FROM(table.MediaItem).
		WHERE(table.MediaItem.ID.EQ(sqlite.Int64(id)))

	item := new(storage.MediaItem)
	err := stmt.QueryContext(ctx, s.db, item)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lookup media item: %w", err)
	}

	if item.MediaType == string(storage.MediaTypeTV) {
		item.Seasons, err = s.ListSeasons(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	return item, nil
}

// ListAvailableMedia pages through items whose status on either tier claims content on disk
func (s *SQLite) ListAvailableMedia(ctx context.Context, offset, limit int) ([]*storage.MediaItem, error) {
	items := make([]*storage.MediaItem, 0)
	stmt := table.MediaItem.
		SELECT(table.MediaItem.AllColumns).
		FROM(table.MediaItem).
		WHERE(
			onDiskStatuses(table.MediaItem.Status).
				OR(onDiskStatuses(table.MediaItem.Status4k))).
		ORDER_BY(table.MediaItem.ID.ASC()).
		OFFSET(int64(offset)).
		LIMIT(int64(limit))

	err := stmt.QueryContext(ctx, s.db, &items)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.MediaType != string(storage.MediaTypeTV) {
			continue
		}
		item.Seasons, err = s.ListSeasons(ctx, int64(item.ID))
		if err != nil {
			return nil, err
		}
	}

	return items, nil
}

// ListMedia lists catalog entries without filtering
func (s *SQLite) ListMedia(ctx context.Context, offset, limit int) ([]*storage.MediaItem, error) {
	items := make([]*storage.MediaItem, 0)
	stmt := table.MediaItem.
		SELECT(table.MediaItem.AllColumns).
		FROM(table.MediaItem).
		ORDER_BY(table.MediaItem.ID.ASC()).
		OFFSET(int64(offset)).
		LIMIT(int64(limit))

	err := stmt.QueryContext(ctx, s.db, &items)
	return items, err
}

// CountMedia returns the total number of catalog entries
func (s *SQLite) CountMedia(ctx context.Context) (int64, error) {
	var dest struct {
		Count int64
	}
	stmt := table.MediaItem.
		SELECT(sqlite.COUNT(table.MediaItem.ID).AS("count")).
		FROM(table.MediaItem)

	err := stmt.QueryContext(ctx, s.db, &dest)
	return dest.Count, err
}

// UpdateMediaItem persists status and external reference changes for an item
func (s *SQLite) UpdateMediaItem(ctx context.Context, item *storage.MediaItem) error {
	now := time.Now()
	item.UpdatedAt = &now

	stmt := table.MediaItem.
		UPDATE(
			table.MediaItem.Status,
			table.MediaItem.Status4k,
			table.MediaItem.RatingKey,
			table.MediaItem.RatingKey4k,
			table.MediaItem.ExternalServiceID,
			table.MediaItem.ExternalServiceID4k,
			table.MediaItem.ExternalServiceSlug,
			table.MediaItem.ExternalServiceSlug4k,
			table.MediaItem.UpdatedAt).
		MODEL(item.MediaItem).
		WHERE(table.MediaItem.ID.EQ(sqlite.Int32(item.ID)))

	_, err := s.handleStatement(ctx, stmt)
	return err
}

// ListSeasons lists the seasons belonging to a show
func (s *SQLite) ListSeasons(ctx context.Context, mediaItemID int64) ([]*model.Season, error) {
	seasons := make([]*model.Season, 0)
	stmt := table.Season.
		SELECT(table.Season.AllColumns).
		FROM(table.Season).
		WHERE(table.Season.MediaItemID.EQ(sqlite.Int64(mediaItemID))).
		ORDER_BY(table.Season.SeasonNumber.ASC())

	err := stmt.QueryContext(ctx, s.db, &seasons)
	return seasons, err
}

// CreateSeason stores a season row for a show
func (s *SQLite) CreateSeason(ctx context.Context, season model.Season) (int64, error) {
	if season.Status == "" {
		season.Status = string(storage.MediaStatusUnknown)
	}
	if season.Status4k == "" {
		season.Status4k = string(storage.MediaStatusUnknown)
	}

	stmt := table.Season.
		INSERT(table.Season.MutableColumns).
		MODEL(season).
		RETURNING(table.Season.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// UpdateSeasonStatuses sets both tier statuses on a season
func (s *SQLite) UpdateSeasonStatuses(ctx context.Context, seasonID int64, status, status4k storage.MediaStatus) error {
	stmt := table.Season.
		UPDATE().
		SET(
			table.Season.Status.SET(sqlite.String(string(status))),
			table.Season.Status4k.SET(sqlite.String(string(status4k)))).
		WHERE(table.Season.ID.EQ(sqlite.Int64(seasonID)))

	_, err := s.handleStatement(ctx, stmt)
	return err
}
