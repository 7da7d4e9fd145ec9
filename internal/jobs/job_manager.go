package jobs

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is one unit of scheduled work.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a function to Job.
type JobFunc func(ctx context.Context) error

func (f JobFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to register, start and stop background jobs.
type JobManager struct {
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
	logger  zerolog.Logger
	names   []string
}

// NewJobManager creates a manager with a seconds-aware cron scheduler.
// Each run gets a context bounded by runTimeout and cancelled by Stop.
func NewJobManager(runTimeout time.Duration, logger zerolog.Logger) *JobManager {
	logger = logger.With().Str("component", "job_manager").Logger()
	cronLog := cronLogger{logger: logger}

	ctx, cancel := context.WithCancel(context.Background())
	return &JobManager{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		ctx:     ctx,
		cancel:  cancel,
		timeout: runTimeout,
		logger:  logger,
	}
}

// Register schedules job under name. An empty spec leaves the job disabled.
func (m *JobManager) Register(name, spec string, job Job) error {
	if spec == "" {
		m.logger.Info().Str("job", name).Msg("job disabled")
		return nil
	}

	log := m.logger.With().Str("job", name).Logger()
	_, err := m.cron.AddFunc(spec, func() {
		m.run(name, job, log)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	m.names = append(m.names, name)
	return nil
}

// Jobs returns the names of the scheduled jobs.
func (m *JobManager) Jobs() []string {
	return append([]string(nil), m.names...)
}

// Start starts the scheduler in its own goroutine.
func (m *JobManager) Start() {
	m.cron.Start()
	m.logger.Info().Strs("jobs", m.names).Msg("jobs started")
}

// Stop cancels running jobs and waits for them to return or for ctx to end.
func (m *JobManager) Stop(ctx context.Context) {
	m.cancel()
	done := m.cron.Stop().Done()

	select {
	case <-done:
		m.logger.Info().Msg("jobs stopped")
	case <-ctx.Done():
		m.logger.Warn().Msg("jobs did not stop in time")
	}
}

func (m *JobManager) run(name string, job Job, log zerolog.Logger) {
	ctx := m.ctx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	started := time.Now()
	if err := job.Run(ctx); err != nil {
		metrics.JobRunsTotal.WithLabelValues(name, "error").Inc()
		log.Error().Err(err).Dur("took", time.Since(started)).Msg("job failed")
		return
	}
	metrics.JobRunsTotal.WithLabelValues(name, "ok").Inc()
	log.Debug().Dur("took", time.Since(started)).Msg("job finished")
}

// cronLogger routes cron's internal messages to zerolog.
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
