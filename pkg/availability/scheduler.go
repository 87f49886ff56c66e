package availability

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/availarr/availarr/config"
	"github.com/availarr/availarr/pkg/cache"
	"github.com/availarr/availarr/pkg/logger"
	"github.com/availarr/availarr/pkg/storage"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

type JobType string

const (
	AvailabilitySync JobType = "availability_sync"
)

type JobExecutor func(ctx context.Context, jobID int64) error

// Scheduler turns the reconciliation engine into a periodically executed job.
// Jobs are persisted so a restart picks up where the schedule left off.
type Scheduler struct {
	storage     storage.Storage
	config      config.Availability
	executors   map[JobType]JobExecutor
	runningJobs *cache.Cache[int64, context.CancelFunc]
}

// NewScheduler creates a new scheduler for jobs
func NewScheduler(storage storage.Storage, config config.Availability, executors map[JobType]JobExecutor) *Scheduler {
	return &Scheduler{
		storage:     storage,
		config:      config,
		executors:   executors,
		runningJobs: cache.New[int64, context.CancelFunc](),
	}
}

func (s *Scheduler) Run(ctx context.Context) error {
	go s.processPendingJobs(ctx)
	go s.runPruning(ctx)
	return s.runJobScheduling(ctx)
}

func (s *Scheduler) runPruning(ctx context.Context) {
	if s.config.Jobs.CleanupPeriod <= 0 {
		return
	}

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pruneOldJobs(ctx)
		}
	}
}

func (s *Scheduler) pruneOldJobs(ctx context.Context) {
	log := logger.FromCtx(ctx)

	cutoff := time.Now().Add(-s.config.Jobs.CleanupPeriod)

	deleted, err := s.storage.DeleteJobsBefore(ctx, cutoff)
	if err != nil {
		log.Error("failed to prune old jobs", zap.Error(err))
		return
	}

	if deleted > 0 {
		log.Info("pruned old jobs", zap.Int64("count", deleted))
	}
}

func (s *Scheduler) runJobScheduling(ctx context.Context) error {
	interval := s.config.Jobs.JobScheduleInterval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	jobTypes := []JobType{AvailabilitySync}

	for {
		select {
		case <-ctx.Done():
			return s.shutdownJobs(ctx)
		case <-ticker.C:
			for _, jobType := range jobTypes {
				s.checkAndScheduleJob(ctx, jobType)
			}
		}
	}
}

func (s *Scheduler) shutdownJobs(ctx context.Context) error {
	log := logger.FromCtx(ctx)
	log.Debug("scheduler context cancelled")

	jobIDs := s.runningJobs.Keys()

	var wg sync.WaitGroup
	for _, id := range jobIDs {
		wg.Add(1)
		go func(ctx context.Context, jobID int64) {
			defer wg.Done()
			if err := s.CancelJob(ctx, jobID); err != nil {
				log.Warn("failed to cancel job on context cancellation",
					zap.Int64("job_id", jobID),
					zap.Error(err))
			}
		}(ctx, id)
	}

	wg.Wait()
	log.Debug("all jobs cancelled on context cancellation", zap.Int("count", len(jobIDs)))
	return nil
}

func (s *Scheduler) checkAndScheduleJob(ctx context.Context, jobType JobType) {
	log := logger.FromCtx(ctx).With(zap.String("job_type", string(jobType)))

	interval := s.getIntervalForJobType(jobType)

	lastJob, err := s.storage.LatestJobByType(ctx, string(jobType))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("no previous jobs found, scheduling immediately")
			if _, err := s.createPendingJob(ctx, jobType); err != nil {
				log.Error("failed to create pending job", zap.Error(err))
			}
			return
		}
		log.Error("failed to get last job", zap.Error(err))
		return
	}

	switch storage.JobState(lastJob.State) {
	case storage.JobStatePending, storage.JobStateRunning:
		log.Debug("job already pending or running, not scheduling",
			zap.String("state", lastJob.State))
		return
	case storage.JobStateDone, storage.JobStateError, storage.JobStateCancelled:
		timeSinceLastJob := time.Since(*lastJob.CreatedAt)

		if timeSinceLastJob >= interval {
			log.Debug("interval elapsed, scheduling job",
				zap.Duration("time_since_last", timeSinceLastJob),
				zap.Duration("interval", interval))
			if _, err := s.createPendingJob(ctx, jobType); err != nil {
				log.Error("failed to create pending job", zap.Error(err))
			}
			return
		}

		log.Debug("interval not elapsed yet",
			zap.Duration("time_since_last", timeSinceLastJob),
			zap.Duration("interval", interval),
			zap.Duration("time_remaining", interval-timeSinceLastJob))
	}
}

func (s *Scheduler) getIntervalForJobType(jobType JobType) time.Duration {
	switch jobType {
	case AvailabilitySync:
		if s.config.Jobs.AvailabilitySync > 0 {
			return s.config.Jobs.AvailabilitySync
		}
		return time.Hour
	default:
		return 10 * time.Minute
	}
}

func (s *Scheduler) createPendingJob(ctx context.Context, jobType JobType) (int64, error) {
	log := logger.FromCtx(ctx).With(zap.String("job_type", string(jobType)))

	job := storage.Job{
		Job: model.Job{
			Type: string(jobType),
		},
	}

	id, err := s.storage.CreateJob(ctx, job, storage.JobStatePending)
	if err == storage.ErrJobAlreadyPending {
		log.Debug("pending job already exists for type")
		return 0, err
	}
	if err != nil {
		log.Error("failed to create pending job", zap.Error(err))
		return 0, err
	}
	log.Debug("created pending job", zap.Int64("id", id))
	return id, nil
}

func (s *Scheduler) processPendingJobs(ctx context.Context) {
	ticker := time.NewTicker(time.Second * 5)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			log := logger.FromCtx(ctx)

			jobs, err := s.storage.ListJobsByState(ctx, storage.JobStatePending)
			if err != nil {
				log.Debug("failed to list pending jobs", zap.Error(err))
				continue
			}
			if len(jobs) == 0 {
				continue
			}

			log.Debug("found pending jobs", zap.Int("count", len(jobs)))

			for _, job := range jobs {
				if err := ctx.Err(); err != nil {
					return
				}

				s.executeJob(ctx, job)
			}
		}
	}
}

func (s *Scheduler) executeJob(ctx context.Context, job *storage.Job) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("job_id", int64(job.ID)),
		zap.String("job_type", job.Type),
	)

	executor, ok := s.executors[JobType(job.Type)]
	if !ok {
		log.Error("no executor found for job type")
		errMsg := "no executor found for job type"
		if err := s.storage.UpdateJobState(ctx, int64(job.ID), storage.JobStateError, &errMsg); err != nil {
			log.Error("failed to update job state to error", zap.Error(err))
		}
		return
	}

	err := s.storage.UpdateJobState(ctx, int64(job.ID), storage.JobStateRunning, nil)
	if err != nil {
		log.Error("failed to update job state to running", zap.Error(err))
		return
	}

	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.runningJobs.Set(int64(job.ID), cancel)

	defer func() {
		s.runningJobs.Delete(int64(job.ID))
	}()

	log.Debug("executing job")

	err = executor(jobCtx, int64(job.ID))

	// a cooperatively cancelled run returns nil, so the context decides
	// cancellation before the executor's error does
	if jobCtx.Err() == context.Canceled {
		log.Info("job cancelled")
		if err := s.storage.UpdateJobState(ctx, int64(job.ID), storage.JobStateCancelled, nil); err != nil {
			log.Error("failed to update job state to cancelled", zap.Error(err))
		}
		return
	}

	if err != nil {
		log.Error("job execution failed", zap.Error(err))
		errMsg := err.Error()
		if err := s.storage.UpdateJobState(ctx, int64(job.ID), storage.JobStateError, &errMsg); err != nil {
			log.Error("failed to update job state to error", zap.Error(err))
		}
		return
	}

	err = s.storage.UpdateJobState(ctx, int64(job.ID), storage.JobStateDone, nil)
	if err != nil {
		log.Error("failed to update job state to done", zap.Error(err))
		return
	}

	log.Debug("job completed successfully")
}

func (s *Scheduler) CancelJob(ctx context.Context, jobID int64) error {
	log := logger.FromCtx(ctx).With(zap.Int64("job_id", jobID))

	job, err := s.storage.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	switch storage.JobState(job.State) {
	case storage.JobStatePending:
		log.Debug("cancelling pending job")
		return s.storage.UpdateJobState(ctx, jobID, storage.JobStateCancelled, nil)

	case storage.JobStateRunning:
		cancel, ok := s.runningJobs.Get(jobID)
		if !ok {
			log.Debug("job not found in running jobs map")
			return nil
		}

		log.Debug("cancelling running job")
		cancel()

		timeout := time.After(30 * time.Second)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-timeout:
				log.Error("timeout waiting for job to complete cancellation")
				return nil
			case <-ticker.C:
				if _, exists := s.runningJobs.Get(jobID); !exists {
					log.Debug("job was cancelled")
					return nil
				}
			}
		}

	default:
		return nil
	}
}
