package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/availarr/availarr/pkg/availability"
	"github.com/availarr/availarr/pkg/logger"
	"github.com/availarr/availarr/pkg/storage"
	"github.com/dustin/go-humanize"
	"github.com/oapi-codegen/nullable"
	"go.uber.org/zap"
)

// SyncStatusResponse reports whether a reconciliation pass is running and how
// the last scheduled pass went.
type SyncStatusResponse struct {
	Running bool       `json:"running"`
	LastJob *JobStatus `json:"lastJob,omitempty"`
}

// JobStatus is one persisted job rendered for the API. The timestamps are
// humanized so the status reads naturally in clients.
type JobStatus struct {
	ID      int64                     `json:"id"`
	Type    string                    `json:"type"`
	State   string                    `json:"state"`
	Created string                    `json:"created"`
	Updated string                    `json:"updated"`
	Error   nullable.Nullable[string] `json:"error"`
}

func toJobStatus(job *storage.Job) *JobStatus {
	status := &JobStatus{
		ID:    int64(job.ID),
		Type:  job.Type,
		State: job.State,
		Error: nullable.NewNullNullable[string](),
	}

	if job.ErrorMessage != nil {
		status.Error = nullable.NewNullableWithValue(*job.ErrorMessage)
	}
	if job.CreatedAt != nil {
		status.Created = humanize.Time(*job.CreatedAt)
	}
	if job.UpdatedAt != nil {
		status.Updated = humanize.Time(*job.UpdatedAt)
	}

	return status
}

// TriggerSync starts a reconciliation pass in the background
func (s Server) TriggerSync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		// the run outlives the request, so it gets its own context carrying
		// the request's logger
		ctx := logger.WithCtx(context.Background(), log)

		if err := s.engine.Start(ctx); err != nil {
			if errors.Is(err, availability.ErrAlreadyRunning) {
				writeErrorResponse(w, http.StatusConflict, err)
				return
			}
			log.Error("failed to start reconciliation", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusAccepted, GenericResponse{Response: "started"})
	}
}

// CancelSync requests a cooperative stop of the active reconciliation pass
func (s Server) CancelSync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.engine.IsRunning() {
			writeErrorResponse(w, http.StatusConflict, availability.ErrNotRunning)
			return
		}

		s.engine.Cancel()
		writeResponse(w, http.StatusAccepted, GenericResponse{Response: "cancelling"})
	}
}

// SyncStatus reports the engine state and the latest persisted job
func (s Server) SyncStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		response := SyncStatusResponse{
			Running: s.engine.IsRunning(),
		}

		job, err := s.store.LatestJobByType(r.Context(), string(availability.AvailabilitySync))
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to get latest job", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}
		if job != nil {
			response.LastJob = toJobStatus(job)
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: response})
	}
}
