package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/availarr/availarr/config"
	"github.com/availarr/availarr/pkg/plex"
	plexMocks "github.com/availarr/availarr/pkg/plex/mocks"
	"github.com/availarr/availarr/pkg/storage"
	availSqlite "github.com/availarr/availarr/pkg/storage/sqlite"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func initScheduler(t *testing.T, ctx context.Context, cfg config.Availability, executors map[JobType]JobExecutor) (*Scheduler, storage.Storage) {
	t.Helper()

	store, err := availSqlite.New(":memory:")
	require.NoError(t, err)

	err = store.Init(ctx)
	require.NoError(t, err)

	return NewScheduler(store, cfg, executors), store
}

func TestScheduler_createPendingJob(t *testing.T) {
	t.Run("create job and duplicate pending job", func(t *testing.T) {
		ctx := context.Background()
		scheduler, store := initScheduler(t, ctx, config.Availability{}, make(map[JobType]JobExecutor))

		id, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)
		assert.NotEqual(t, int64(0), id)

		jobs, err := store.ListJobsByState(ctx, storage.JobStatePending)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, int32(id), jobs[0].ID)
		assert.Equal(t, string(AvailabilitySync), jobs[0].Type)
		assert.NotNil(t, jobs[0].CreatedAt)

		id, err = scheduler.createPendingJob(ctx, AvailabilitySync)
		require.ErrorIs(t, err, storage.ErrJobAlreadyPending)
		assert.Equal(t, int64(0), id)
	})
}

func TestScheduler_executeJob(t *testing.T) {
	t.Run("successful job execution", func(t *testing.T) {
		ctx := context.Background()

		executorCalled := false
		executors := map[JobType]JobExecutor{
			AvailabilitySync: func(ctx context.Context, jobID int64) error {
				executorCalled = true
				return nil
			},
		}

		scheduler, store := initScheduler(t, ctx, config.Availability{}, executors)

		jobID, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)

		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)
		require.Equal(t, string(storage.JobStatePending), job.State)

		scheduler.executeJob(ctx, job)

		assert.True(t, executorCalled)

		updatedJob, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, string(storage.JobStateDone), updatedJob.State)
		assert.Nil(t, updatedJob.ErrorMessage)

		_, inCache := scheduler.runningJobs.Get(jobID)
		assert.False(t, inCache, "job should be removed from cache after completion")
	})

	t.Run("no executor found for job type", func(t *testing.T) {
		ctx := context.Background()
		scheduler, store := initScheduler(t, ctx, config.Availability{}, make(map[JobType]JobExecutor))

		jobID, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)

		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)

		scheduler.executeJob(ctx, job)

		updatedJob, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, string(storage.JobStateError), updatedJob.State)
		require.NotNil(t, updatedJob.ErrorMessage)
		assert.Equal(t, "no executor found for job type", *updatedJob.ErrorMessage)
	})

	t.Run("executor returns error", func(t *testing.T) {
		ctx := context.Background()

		testError := "probe timed out"
		executors := map[JobType]JobExecutor{
			AvailabilitySync: func(ctx context.Context, jobID int64) error {
				return errors.New(testError)
			},
		}

		scheduler, store := initScheduler(t, ctx, config.Availability{}, executors)

		jobID, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)

		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)

		scheduler.executeJob(ctx, job)

		updatedJob, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, string(storage.JobStateError), updatedJob.State)
		require.NotNil(t, updatedJob.ErrorMessage)
		assert.Equal(t, testError, *updatedJob.ErrorMessage)

		_, inCache := scheduler.runningJobs.Get(jobID)
		assert.False(t, inCache, "job should be removed from cache after error")
	})

	t.Run("cancelled reconciliation run is recorded as cancelled", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)
		mockPlex := plexMocks.NewMockClientInterface(ctrl)

		// the cancel lands while the first item is being probed; the run then
		// stops at the item boundary and returns nil, so the recorded state
		// must come from the job context rather than the executor's error
		probing := make(chan struct{})
		mockPlex.EXPECT().GetMetadata(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, ratingKey string) (*plex.Metadata, error) {
				close(probing)
				<-ctx.Done()
				return nil, ctx.Err()
			})

		store, err := availSqlite.New(":memory:")
		require.NoError(t, err)
		require.NoError(t, store.Init(ctx))

		engine := New(store, NewAggregator(mockPlex, nil, nil), WithPageSize(10))
		executors := map[JobType]JobExecutor{
			AvailabilitySync: func(ctx context.Context, jobID int64) error {
				_, err := engine.Run(ctx)
				return err
			},
		}
		scheduler := NewScheduler(store, config.Availability{}, executors)

		for i, ratingKey := range []string{"49915", "49916"} {
			_, err = store.CreateMediaItem(ctx, storage.MediaItem{
				MediaItem: model.MediaItem{
					MediaType: string(storage.MediaTypeMovie),
					TmdbID:    int32(603 + i),
					Status:    string(storage.MediaStatusAvailable),
					Status4k:  string(storage.MediaStatusUnknown),
					RatingKey: &ratingKey,
				},
			})
			require.NoError(t, err)
		}

		jobID, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)

		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)

		go scheduler.executeJob(ctx, job)

		<-probing

		err = scheduler.CancelJob(ctx, jobID)
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			job, err := store.GetJob(ctx, jobID)
			return err == nil && job.State == string(storage.JobStateCancelled)
		}, time.Second*2, time.Millisecond*10)
	})
}

func TestScheduler_CancelJob(t *testing.T) {
	t.Run("cancel pending job", func(t *testing.T) {
		ctx := context.Background()
		scheduler, store := initScheduler(t, ctx, config.Availability{}, make(map[JobType]JobExecutor))

		jobID, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)

		err = scheduler.CancelJob(ctx, jobID)
		require.NoError(t, err)

		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, string(storage.JobStateCancelled), job.State)
	})

	t.Run("cancel running job", func(t *testing.T) {
		ctx := context.Background()

		jobExecuting := make(chan bool)
		executors := map[JobType]JobExecutor{
			AvailabilitySync: func(ctx context.Context, jobID int64) error {
				jobExecuting <- true
				<-ctx.Done()
				return ctx.Err()
			},
		}

		scheduler, store := initScheduler(t, ctx, config.Availability{}, executors)

		jobID, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)

		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)

		go scheduler.executeJob(ctx, job)

		<-jobExecuting

		_, inCache := scheduler.runningJobs.Get(jobID)
		assert.True(t, inCache, "job should be in cache while running")

		err = scheduler.CancelJob(ctx, jobID)
		require.NoError(t, err)

		_, inCache = scheduler.runningJobs.Get(jobID)
		assert.False(t, inCache, "job should be removed from cache after cancellation")

		require.Eventually(t, func() bool {
			job, err := store.GetJob(ctx, jobID)
			return err == nil && job.State == string(storage.JobStateCancelled)
		}, time.Second*2, time.Millisecond*10)
	})

	t.Run("cancel completed job does nothing", func(t *testing.T) {
		ctx := context.Background()
		scheduler, store := initScheduler(t, ctx, config.Availability{}, make(map[JobType]JobExecutor))

		jobID, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)

		err = store.UpdateJobState(ctx, jobID, storage.JobStateRunning, nil)
		require.NoError(t, err)

		err = store.UpdateJobState(ctx, jobID, storage.JobStateDone, nil)
		require.NoError(t, err)

		err = scheduler.CancelJob(ctx, jobID)
		require.NoError(t, err)

		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, string(storage.JobStateDone), job.State)
	})

	t.Run("cancel non-existent job", func(t *testing.T) {
		ctx := context.Background()
		scheduler, _ := initScheduler(t, ctx, config.Availability{}, make(map[JobType]JobExecutor))

		err := scheduler.CancelJob(ctx, 9999)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestScheduler_checkAndScheduleJob(t *testing.T) {
	t.Run("no previous jobs schedules immediately", func(t *testing.T) {
		ctx := context.Background()
		cfg := config.Availability{
			Jobs: config.Jobs{AvailabilitySync: 10 * time.Minute},
		}
		scheduler, store := initScheduler(t, ctx, cfg, make(map[JobType]JobExecutor))

		scheduler.checkAndScheduleJob(ctx, AvailabilitySync)

		jobs, err := store.ListJobsByState(ctx, storage.JobStatePending)
		require.NoError(t, err)
		assert.Len(t, jobs, 1, "should create pending job when no previous jobs exist")
	})

	t.Run("interval elapsed schedules new job", func(t *testing.T) {
		ctx := context.Background()
		cfg := config.Availability{
			Jobs: config.Jobs{AvailabilitySync: 1 * time.Millisecond},
		}
		scheduler, store := initScheduler(t, ctx, cfg, make(map[JobType]JobExecutor))

		jobID, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)

		err = store.UpdateJobState(ctx, jobID, storage.JobStateRunning, nil)
		require.NoError(t, err)

		err = store.UpdateJobState(ctx, jobID, storage.JobStateDone, nil)
		require.NoError(t, err)

		time.Sleep(2 * time.Millisecond)

		scheduler.checkAndScheduleJob(ctx, AvailabilitySync)

		jobs, err := store.ListJobsByState(ctx, storage.JobStatePending)
		require.NoError(t, err)
		assert.Len(t, jobs, 1, "should create new job when interval has elapsed")
	})

	t.Run("interval not elapsed does not schedule", func(t *testing.T) {
		ctx := context.Background()
		cfg := config.Availability{
			Jobs: config.Jobs{AvailabilitySync: 1 * time.Hour},
		}
		scheduler, store := initScheduler(t, ctx, cfg, make(map[JobType]JobExecutor))

		jobID, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)

		err = store.UpdateJobState(ctx, jobID, storage.JobStateRunning, nil)
		require.NoError(t, err)

		err = store.UpdateJobState(ctx, jobID, storage.JobStateDone, nil)
		require.NoError(t, err)

		scheduler.checkAndScheduleJob(ctx, AvailabilitySync)

		jobs, err := store.ListJobsByState(ctx, storage.JobStatePending)
		require.NoError(t, err)
		assert.Len(t, jobs, 0, "should not create new job when interval has not elapsed")
	})

	t.Run("pending job blocks scheduling", func(t *testing.T) {
		ctx := context.Background()
		cfg := config.Availability{
			Jobs: config.Jobs{AvailabilitySync: 1 * time.Millisecond},
		}
		scheduler, store := initScheduler(t, ctx, cfg, make(map[JobType]JobExecutor))

		_, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)

		time.Sleep(2 * time.Millisecond)

		scheduler.checkAndScheduleJob(ctx, AvailabilitySync)

		jobs, err := store.ListJobsByState(ctx, storage.JobStatePending)
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("considers cancelled state as completed", func(t *testing.T) {
		ctx := context.Background()
		cfg := config.Availability{
			Jobs: config.Jobs{AvailabilitySync: 1 * time.Millisecond},
		}
		scheduler, store := initScheduler(t, ctx, cfg, make(map[JobType]JobExecutor))

		jobID, err := scheduler.createPendingJob(ctx, AvailabilitySync)
		require.NoError(t, err)

		err = store.UpdateJobState(ctx, jobID, storage.JobStateCancelled, nil)
		require.NoError(t, err)

		time.Sleep(2 * time.Millisecond)

		scheduler.checkAndScheduleJob(ctx, AvailabilitySync)

		jobs, err := store.ListJobsByState(ctx, storage.JobStatePending)
		require.NoError(t, err)
		assert.Len(t, jobs, 1, "should schedule new job after cancelled state")
	})
}

func TestScheduler_getIntervalForJobType(t *testing.T) {
	t.Run("configured interval", func(t *testing.T) {
		cfg := config.Availability{
			Jobs: config.Jobs{AvailabilitySync: 15 * time.Minute},
		}
		scheduler := NewScheduler(nil, cfg, nil)
		assert.Equal(t, 15*time.Minute, scheduler.getIntervalForJobType(AvailabilitySync))
	})

	t.Run("default when unconfigured", func(t *testing.T) {
		scheduler := NewScheduler(nil, config.Availability{}, nil)
		assert.Equal(t, time.Hour, scheduler.getIntervalForJobType(AvailabilitySync))
	})

	t.Run("unknown job type returns default", func(t *testing.T) {
		scheduler := NewScheduler(nil, config.Availability{}, nil)
		assert.Equal(t, 10*time.Minute, scheduler.getIntervalForJobType("UnknownType"))
	})
}

func TestScheduler_pruneOldJobs(t *testing.T) {
	ctx := context.Background()
	// a negative period puts the cutoff in the future so the fresh job is
	// already eligible without sleeping past the timestamp resolution
	cfg := config.Availability{
		Jobs: config.Jobs{CleanupPeriod: -time.Hour},
	}
	scheduler, store := initScheduler(t, ctx, cfg, make(map[JobType]JobExecutor))

	jobID, err := scheduler.createPendingJob(ctx, AvailabilitySync)
	require.NoError(t, err)

	err = store.UpdateJobState(ctx, jobID, storage.JobStateRunning, nil)
	require.NoError(t, err)

	err = store.UpdateJobState(ctx, jobID, storage.JobStateDone, nil)
	require.NoError(t, err)

	scheduler.pruneOldJobs(ctx)

	_, err = store.GetJob(ctx, jobID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
