package jobs

import (
	"context"
	"log/slog"

	"haul/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const DefaultOutboxSchedule = "* * * * * *"

// OrderEventsRelay is the use case the relay job runs.
type OrderEventsRelay interface {
	Handle(ctx context.Context, cmd commands.PublishOrderEventsCommand) (int, error)
}

// OutboxRelayJob moves stored order events to the message broker on a cron
// schedule with a seconds field.
type OutboxRelayJob struct {
	handler  OrderEventsRelay
	cmd      commands.PublishOrderEventsCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOutboxRelayJob(
	handler OrderEventsRelay,
	cmd commands.PublishOrderEventsCommand,
	schedule string,
	logger *slog.Logger,
) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxSchedule
	}
	return &OutboxRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "outbox_relay_job"),
	}
}

// Start registers the relay on the schedule and starts the scheduler.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce relays one batch. Failures are logged; the batch is retried on the
// next tick.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	published, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "published", published, "error", err)
		return
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Relayed order events", "published", published)
	}
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
