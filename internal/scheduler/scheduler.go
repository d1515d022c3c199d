package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/rules"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyJobName  = errors.New("job name is required")
	ErrEmptyCronExpr = errors.New("cron expression is required")
)

const ResetJobName = "registration-reset"

// Resetter - очистка списка регистраций без пользователя-инициатора
type Resetter interface {
	Reset(ctx context.Context, actor *domain.Identity) (int64, error)
}

// Scheduler - обертка над gocron; cron-выражения считаются по времени кампуса
type Scheduler struct {
	scheduler gocron.Scheduler
	stopOnce  sync.Once
	stopErr   error
}

func New(options ...gocron.SchedulerOption) (*Scheduler, error) {
	base := []gocron.SchedulerOption{
		gocron.WithLocation(rules.CampusZone),
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error().
						Str("job_id", jobID.String()).
						Str("job_name", jobName).
						Interface("panic", recoverData).
						Msg("scheduler job panicked")
				}),
			),
		),
	}

	sched, err := gocron.NewScheduler(append(base, options...)...)
	if err != nil {
		return nil, err
	}
	return &Scheduler{scheduler: sched}, nil
}

func (s *Scheduler) Start() {
	log.Info().Msg("scheduler starting")
	s.scheduler.Start()
}

// Stop останавливает планировщик; повторные вызовы возвращают результат первого
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() {
		log.Info().Msg("scheduler stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

// AddJob регистрирует задачу по cron-выражению
func (s *Scheduler) AddJob(name, cronExpr string, task func()) (gocron.Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}

	jobLogger := log.With().Str("job_name", name).Str("cron", cronExpr).Logger()

	wrappedTask := func() {
		started := time.Now()
		jobLogger.Info().Msg("scheduler job started")
		task()
		jobLogger.Info().Dur("duration", time.Since(started)).Msg("scheduler job completed")
	}

	job, err := s.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(wrappedTask),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		jobLogger.Error().Err(err).Msg("failed to register scheduler job")
		return nil, err
	}

	jobLogger.Info().Msg("scheduler job registered")
	return job, nil
}

// RegisterReset добавляет периодическую очистку списка регистраций
func (s *Scheduler) RegisterReset(cronExpr string, resetter Resetter, timeout time.Duration) (gocron.Job, error) {
	return s.AddJob(ResetJobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		removed, err := resetter.Reset(ctx, nil)
		if err != nil {
			log.Error().Err(err).Str("job_name", ResetJobName).Msg("scheduled reset failed")
			return
		}
		log.Info().Int64("removed", removed).Msg("scheduled reset finished")
	})
}
