package sqlite

import (
	"context"

	"github.com/availarr/availarr/pkg/logger"
	"github.com/availarr/availarr/pkg/storage"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/sqlite"
	"go.uber.org/zap"
)

// CreateRequest stores a media request
func (s *SQLite) CreateRequest(ctx context.Context, request model.MediaRequest) (int64, error) {
	if request.Status == "" {
		request.Status = string(storage.RequestStatusPending)
	}

	stmt := table.MediaRequest.
		INSERT(table.MediaRequest.MutableColumns.Except(table.MediaRequest.CreatedAt)).
		MODEL(request).
		RETURNING(table.MediaRequest.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// CreateSeasonRequest stores a season request under an existing media request
func (s *SQLite) CreateSeasonRequest(ctx context.Context, request model.SeasonRequest) (int64, error) {
	stmt := table.SeasonRequest.
		INSERT(table.SeasonRequest.MutableColumns).
		MODEL(request).
		RETURNING(table.SeasonRequest.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// ListRequestsForAvailableMedia returns requests for an item where the item
// status on the request's own tier claims content on disk
func (s *SQLite) ListRequestsForAvailableMedia(ctx context.Context, mediaItemID int64) ([]*model.MediaRequest, error) {
	requests := make([]*model.MediaRequest, 0)
	stmt := sqlite.
		SELECT(table.MediaRequest.AllColumns).
		FROM(
			table.MediaRequest.INNER_JOIN(
				table.MediaItem,
				table.MediaRequest.MediaItemID.EQ(table.MediaItem.ID))).
		WHERE(
			table.MediaItem.ID.EQ(sqlite.Int64(mediaItemID)).
				AND(
					table.MediaRequest.Is4k.EQ(sqlite.Bool(false)).AND(onDiskStatuses(table.MediaItem.Status)).
						OR(table.MediaRequest.Is4k.EQ(sqlite.Bool(true)).AND(onDiskStatuses(table.MediaItem.Status4k)))))

	err := stmt.QueryContext(ctx, s.db, &requests)
	return requests, err
}

// DeleteRequests removes media requests by id, returning the number removed
func (s *SQLite) DeleteRequests(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	stmt := table.MediaRequest.
		DELETE().
		WHERE(table.MediaRequest.ID.IN(int64Expressions(ids)...))

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// ListSeasonRequests returns season request rows for a show season, joined
// with the owning request's tier
func (s *SQLite) ListSeasonRequests(ctx context.Context, mediaItemID int64, seasonNumber int32) ([]*storage.SeasonRequest, error) {
	requests := make([]*storage.SeasonRequest, 0)
	stmt := sqlite.
		SELECT(
			table.SeasonRequest.AllColumns,
			table.MediaRequest.Is4k,
			table.MediaRequest.MediaItemID).
		FROM(
			table.SeasonRequest.INNER_JOIN(
				table.MediaRequest,
				table.SeasonRequest.RequestID.EQ(table.MediaRequest.ID))).
		WHERE(
			table.MediaRequest.MediaItemID.EQ(sqlite.Int64(mediaItemID)).
				AND(table.SeasonRequest.SeasonNumber.EQ(sqlite.Int32(seasonNumber))))

	err := stmt.QueryContext(ctx, s.db, &requests)
	return requests, err
}

// DeleteSeasonRequests removes season request rows and cascades to any owning
// media request left without season requests
func (s *SQLite) DeleteSeasonRequests(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	log := logger.FromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	deleteStmt := table.SeasonRequest.
		DELETE().
		WHERE(table.SeasonRequest.ID.IN(int64Expressions(ids)...)).
		RETURNING(table.SeasonRequest.AllColumns)

	deleted := make([]model.SeasonRequest, 0)
	err = deleteStmt.QueryContext(ctx, tx, &deleted)
	if err != nil {
		log.Debug("failed to delete season requests", zap.Error(err))
		tx.Rollback()
		return 0, err
	}

	parentIDs := make(map[int32]struct{}, len(deleted))
	for _, d := range deleted {
		parentIDs[d.RequestID] = struct{}{}
	}

	parents := make([]sqlite.Expression, 0, len(parentIDs))
	for id := range parentIDs {
		parents = append(parents, sqlite.Int32(id))
	}

	if len(parents) > 0 {
		orphanStmt := table.MediaRequest.
			DELETE().
			WHERE(
				table.MediaRequest.ID.IN(parents...).
					AND(sqlite.NOT(sqlite.EXISTS(
						table.SeasonRequest.
							SELECT(table.SeasonRequest.ID).
							WHERE(table.SeasonRequest.RequestID.EQ(table.MediaRequest.ID))))))

		_, err = orphanStmt.ExecContext(ctx, tx)
		if err != nil {
			log.Debug("failed to delete emptied requests", zap.Error(err))
			tx.Rollback()
			return 0, err
		}
	}

	return int64(len(deleted)), tx.Commit()
}

func int64Expressions(ids []int64) []sqlite.Expression {
	exprs := make([]sqlite.Expression, len(ids))
	for i, id := range ids {
		exprs[i] = sqlite.Int64(id)
	}
	return exprs
}
