package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/availarr/availarr/pkg/storage"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

// CreateJob stores a job in its initial state. Only one pending job per type
// may exist at a time.
func (s *SQLite) CreateJob(ctx context.Context, job storage.Job, initialState storage.JobState) (int64, error) {
	err := job.Machine().ToState(initialState)
	if err != nil {
		return 0, err
	}

	pending, err := s.ListJobsByState(ctx, storage.JobStatePending)
	if err != nil {
		return 0, err
	}
	for _, p := range pending {
		if p.Type == job.Type {
			return 0, storage.ErrJobAlreadyPending
		}
	}

	job.State = string(initialState)

	stmt := table.Job.
		INSERT(table.Job.MutableColumns.Except(table.Job.CreatedAt, table.Job.UpdatedAt)).
		MODEL(job.Job).
		RETURNING(table.Job.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// GetJob fetches a job by id
func (s *SQLite) GetJob(ctx context.Context, id int64) (*storage.Job, error) {
	stmt := table.Job.
		SELECT(table.Job.AllColumns).
		FROM(table.Job).
		WHERE(table.Job.ID.EQ(sqlite.Int64(id)))

	job := new(storage.Job)
	err := stmt.QueryContext(ctx, s.db, job)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lookup job: %w", err)
	}

	return job, nil
}

// ListJobsByState lists jobs in the given state, oldest first
func (s *SQLite) ListJobsByState(ctx context.Context, state storage.JobState) ([]*storage.Job, error) {
	jobs := make([]*storage.Job, 0)
	stmt := table.Job.
		SELECT(table.Job.AllColumns).
		FROM(table.Job).
		WHERE(table.Job.State.EQ(sqlite.String(string(state)))).
		ORDER_BY(table.Job.CreatedAt.ASC())

	err := stmt.QueryContext(ctx, s.db, &jobs)
	return jobs, err
}

// LatestJobByType returns the most recently created job of the given type
func (s *SQLite) LatestJobByType(ctx context.Context, jobType string) (*storage.Job, error) {
	stmt := table.Job.
		SELECT(table.Job.AllColumns).
		FROM(table.Job).
		WHERE(table.Job.Type.EQ(sqlite.String(jobType))).
		ORDER_BY(table.Job.ID.DESC()).
		LIMIT(1)

	job := new(storage.Job)
	err := stmt.QueryContext(ctx, s.db, job)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lookup job: %w", err)
	}

	return job, nil
}

// UpdateJobState moves a job to a new state if the transition is legal
func (s *SQLite) UpdateJobState(ctx context.Context, id int64, state storage.JobState, errorMsg *string) error {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return err
	}

	err = job.Machine().ToState(state)
	if err != nil {
		return err
	}

	columns := []interface{}{
		table.Job.State.SET(sqlite.String(string(state))),
		table.Job.UpdatedAt.SET(sqlite.TimestampExp(sqlite.String(time.Now().Format(timestampFormat)))),
	}
	if errorMsg != nil {
		columns = append(columns, table.Job.ErrorMessage.SET(sqlite.String(*errorMsg)))
	}

	stmt := table.Job.
		UPDATE().
		SET(columns[0], columns[1:]...).
		WHERE(table.Job.ID.EQ(sqlite.Int64(id)))

	_, err = s.handleStatement(ctx, stmt)
	return err
}

// DeleteJobsBefore removes finished jobs created before the cutoff
func (s *SQLite) DeleteJobsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	stmt := table.Job.
		DELETE().
		WHERE(
			table.Job.State.IN(
				sqlite.String(string(storage.JobStateDone)),
				sqlite.String(string(storage.JobStateError)),
				sqlite.String(string(storage.JobStateCancelled))).
				AND(table.Job.CreatedAt.LT(sqlite.TimestampExp(sqlite.String(cutoff.UTC().Format(timestampFormat))))))

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
