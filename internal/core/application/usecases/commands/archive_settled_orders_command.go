package commands

import (
	"errors"
	"fmt"
	"time"

	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"
)

var ErrArchiveSettledOrdersCommandIsNotConstructed = errors.New(
	"ArchiveSettledOrdersCommand must be created via NewArchiveSettledOrdersCommand constructor",
)

// ArchiveSettledOrdersCommand archives terminal orders untouched for longer than retention.
type ArchiveSettledOrdersCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewArchiveSettledOrdersCommand(retention time.Duration) (ArchiveSettledOrdersCommand, error) {
	if retention <= 0 {
		return ArchiveSettledOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("retention",
			fmt.Errorf("%s is not greater than 0", retention))
	}

	return ArchiveSettledOrdersCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ArchiveSettledOrdersCommand) Validate() error {
	return c.guard.Validate(ErrArchiveSettledOrdersCommandIsNotConstructed)
}

func (c ArchiveSettledOrdersCommand) Retention() time.Duration {
	return c.retention
}
