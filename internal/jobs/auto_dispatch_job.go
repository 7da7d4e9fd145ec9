package jobs

import (
	"context"
	"errors"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/rs/zerolog"
)

// AwaitingOrders lists ready delivery orders that still have no courier.
type AwaitingOrders interface {
	ListAwaitingCourier(ctx context.Context, limit int) ([]int64, error)
}

// AutoAssigner attaches the best courier to one order.
type AutoAssigner interface {
	Handle(ctx context.Context, command commands.AutoAssignCommand) (commands.AutoAssignResult, error)
}

// AutoDispatchJob assigns couriers to orders nobody dispatched by hand.
// Orders are processed one by one; each assignment takes its own row lock, so
// the job and a dispatcher clicking auto-assign never both win.
type AutoDispatchJob struct {
	orders   AwaitingOrders
	assigner AutoAssigner
	batch    int
	logger   zerolog.Logger
}

func NewAutoDispatchJob(orders AwaitingOrders, assigner AutoAssigner, batch int, logger zerolog.Logger) *AutoDispatchJob {
	if batch <= 0 {
		batch = 50
	}
	return &AutoDispatchJob{
		orders:   orders,
		assigner: assigner,
		batch:    batch,
		logger:   logger.With().Str("component", "auto_dispatch_job").Logger(),
	}
}

// Run processes one batch of awaiting orders. It returns the first
// infrastructure error after trying every order in the batch.
func (j *AutoDispatchJob) Run(ctx context.Context) error {
	ids, err := j.orders.ListAwaitingCourier(ctx, j.batch)
	if err != nil {
		return err
	}

	var firstErr error
	assigned := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return errors.Join(firstErr, ctx.Err())
		}

		command, err := commands.NewAutoAssignCommand(id)
		if err != nil {
			return err
		}

		result, err := j.assigner.Handle(ctx, command)
		if err != nil {
			j.logger.Error().Err(err).Int64("order_id", id).Msg("auto-assign failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if !result.Success {
			j.logger.Debug().Int64("order_id", id).Str("reason", string(result.Reason)).Msg("order left unassigned")
			continue
		}

		assigned++
		j.logger.Info().
			Int64("order_id", id).
			Int64("courier_id", result.Assigned.Courier.ID()).
			Interface("score", result.Assigned.KnownScore()).
			Msg("courier assigned")
	}

	if len(ids) > 0 {
		j.logger.Debug().Int("checked", len(ids)).Int("assigned", assigned).Msg("auto-dispatch pass done")
	}
	return firstErr
}
