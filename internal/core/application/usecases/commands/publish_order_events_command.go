package commands

import (
	"errors"

	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

const (
	MinPublishBatchSize = 1
	MaxPublishBatchSize = 1000
)

var (
	ErrPublishOrderEventsCommandIsNotConstructed = errors.New(
		"PublishOrderEventsCommand must be created via NewPublishOrderEventsCommand constructor",
	)
)

// PublishOrderEventsCommand relays up to BatchSize stored order events.
type PublishOrderEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewPublishOrderEventsCommand(batchSize int) (PublishOrderEventsCommand, error) {
	if batchSize < MinPublishBatchSize || batchSize > MaxPublishBatchSize {
		return PublishOrderEventsCommand{}, errs.NewValueIsOutOfRangeError(
			"batchSize", batchSize, MinPublishBatchSize, MaxPublishBatchSize,
		)
	}

	return PublishOrderEventsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PublishOrderEventsCommand) Validate() error {
	return c.guard.Validate(ErrPublishOrderEventsCommandIsNotConstructed)
}

func (c PublishOrderEventsCommand) BatchSize() int {
	return c.batchSize
}
