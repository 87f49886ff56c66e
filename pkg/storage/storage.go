package storage

import (
	"context"
	"errors"
	"time"

	"github.com/availarr/availarr/pkg/machine"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")
var ErrJobAlreadyPending = errors.New("job of this type already pending")

type Storage interface {
	Init(ctx context.Context) error
	MediaStorage
	RequestStorage
	JobStorage
}

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// MediaStatus tracks how much of an item (or season) is on disk, per tier.
type MediaStatus string

const (
	MediaStatusUnknown            MediaStatus = "unknown"
	MediaStatusPending            MediaStatus = "pending"
	MediaStatusProcessing         MediaStatus = "processing"
	MediaStatusPartiallyAvailable MediaStatus = "partially_available"
	MediaStatusAvailable          MediaStatus = "available"
)

// Reconcilable reports whether a status is subject to availability reconciliation.
// Only statuses that claim on-disk content can be downgraded.
func (s MediaStatus) Reconcilable() bool {
	return s == MediaStatusAvailable || s == MediaStatusPartiallyAvailable
}

// ReconcileMachine describes the legal status movements during reconciliation.
// Reconciliation never promotes; unknown, pending, and processing are terminal here.
func ReconcileMachine(current MediaStatus) *machine.StateMachine[MediaStatus] {
	return machine.New(current,
		machine.From(MediaStatusAvailable).To(MediaStatusPartiallyAvailable, MediaStatusProcessing, MediaStatusPending, MediaStatusUnknown),
		machine.From(MediaStatusPartiallyAvailable).To(MediaStatusProcessing, MediaStatusPending, MediaStatusUnknown),
	)
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDeclined RequestStatus = "declined"
)

// MediaItem is a catalog entry for a movie or show. Seasons is populated for shows.
type MediaItem struct {
	model.MediaItem
	Seasons []*model.Season `json:"seasons,omitempty"`
}

// StatusFor returns the item status for the given tier.
func (m *MediaItem) StatusFor(is4k bool) MediaStatus {
	if is4k {
		return MediaStatus(m.Status4k)
	}
	return MediaStatus(m.Status)
}

// SetStatusFor sets the item status for the given tier.
func (m *MediaItem) SetStatusFor(is4k bool, status MediaStatus) {
	if is4k {
		m.Status4k = string(status)
	} else {
		m.Status = string(status)
	}
}

// RatingKeyFor returns the media server reference for the given tier.
func (m *MediaItem) RatingKeyFor(is4k bool) *string {
	if is4k {
		return m.RatingKey4k
	}
	return m.RatingKey
}

// ServiceIDFor returns the automation manager reference for the given tier.
func (m *MediaItem) ServiceIDFor(is4k bool) *int32 {
	if is4k {
		return m.ExternalServiceID4k
	}
	return m.ExternalServiceID
}

// ClearReferencesFor empties all external references for the given tier.
func (m *MediaItem) ClearReferencesFor(is4k bool) {
	empty := ""
	if is4k {
		m.RatingKey4k = &empty
		m.ExternalServiceID4k = nil
		m.ExternalServiceSlug4k = nil
	} else {
		m.RatingKey = &empty
		m.ExternalServiceID = nil
		m.ExternalServiceSlug = nil
	}
}

// SeasonStatusFor returns a season status for the given tier.
func SeasonStatusFor(s *model.Season, is4k bool) MediaStatus {
	if is4k {
		return MediaStatus(s.Status4k)
	}
	return MediaStatus(s.Status)
}

// SetSeasonStatusFor sets a season status for the given tier.
func SetSeasonStatusFor(s *model.Season, is4k bool, status MediaStatus) {
	if is4k {
		s.Status4k = string(status)
	} else {
		s.Status = string(status)
	}
}

// SeasonRequest is a season request row joined with its owning media request.
type SeasonRequest struct {
	model.SeasonRequest
	Is4k        bool  `alias:"media_request.is_4k" json:"is4k"`
	MediaItemID int32 `alias:"media_request.media_item_id" json:"-"`
}

type MediaStorage interface {
	CreateMediaItem(ctx context.Context, item MediaItem) (int64, error)
	GetMediaItem(ctx context.Context, id int64) (*MediaItem, error)
	// ListAvailableMedia pages through items whose status on either tier is
	// available or partially available, seasons populated for shows.
	ListAvailableMedia(ctx context.Context, offset, limit int) ([]*MediaItem, error)
	ListMedia(ctx context.Context, offset, limit int) ([]*MediaItem, error)
	CountMedia(ctx context.Context) (int64, error)
	UpdateMediaItem(ctx context.Context, item *MediaItem) error
	ListSeasons(ctx context.Context, mediaItemID int64) ([]*model.Season, error)
	CreateSeason(ctx context.Context, season model.Season) (int64, error)
	UpdateSeasonStatuses(ctx context.Context, seasonID int64, status, status4k MediaStatus) error
}

type RequestStorage interface {
	CreateRequest(ctx context.Context, request model.MediaRequest) (int64, error)
	CreateSeasonRequest(ctx context.Context, request model.SeasonRequest) (int64, error)
	// ListRequestsForAvailableMedia returns requests joined to the item where the
	// item status for the request's own tier is available or partially available.
	ListRequestsForAvailableMedia(ctx context.Context, mediaItemID int64) ([]*model.MediaRequest, error)
	DeleteRequests(ctx context.Context, ids []int64) (int64, error)
	ListSeasonRequests(ctx context.Context, mediaItemID int64, seasonNumber int32) ([]*SeasonRequest, error)
	// DeleteSeasonRequests removes season request rows and any owning media
	// request left without season requests.
	DeleteSeasonRequests(ctx context.Context, ids []int64) (int64, error)
}

type JobState string

const (
	JobStateNew       JobState = ""
	JobStatePending   JobState = "pending"
	JobStateRunning   JobState = "running"
	JobStateError     JobState = "error"
	JobStateDone      JobState = "done"
	JobStateCancelled JobState = "cancelled"
)

type Job struct {
	model.Job
}

func (j Job) Machine() *machine.StateMachine[JobState] {
	return machine.New(JobState(j.State),
		machine.From(JobStateNew).To(JobStatePending),
		machine.From(JobStatePending).To(JobStateRunning, JobStateError, JobStateCancelled),
		machine.From(JobStateRunning).To(JobStateError, JobStateDone, JobStateCancelled),
	)
}

type JobStorage interface {
	CreateJob(ctx context.Context, job Job, initialState JobState) (int64, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	ListJobsByState(ctx context.Context, state JobState) ([]*Job, error)
	LatestJobByType(ctx context.Context, jobType string) (*Job, error)
	UpdateJobState(ctx context.Context, id int64, state JobState, errorMsg *string) error
	DeleteJobsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
