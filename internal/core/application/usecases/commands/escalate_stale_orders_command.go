package commands

import (
	"errors"
	"time"

	"efood/internal/pkg/errs"
	"efood/internal/pkg/guard"
)

var (
	ErrEscalateStaleOrdersCommandIsNotConstructed = errors.New(
		"EscalateStaleOrdersCommand must be created via NewEscalateStaleOrdersCommand constructor",
	)
	ErrWaitingTTLIsInvalid = errs.NewValueIsInvalidError("waiting TTL must be greater than 0")
)

// EscalateStaleOrdersCommand represents a sweep over the marketplace pool
// for orders no driver has claimed within the waiting TTL. Escalated orders
// stay in the pool; the sweep only surfaces them to administrators.
type EscalateStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	waitingTTL time.Duration

	guard guard.ConstructorGuard
}

// NewEscalateStaleOrdersCommand creates a command to escalate orders that
// have been waiting for a driver longer than waitingTTL.
func NewEscalateStaleOrdersCommand(waitingTTL time.Duration) (EscalateStaleOrdersCommand, error) {
	cmd := EscalateStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if waitingTTL <= 0 {
		return EscalateStaleOrdersCommand{}, ErrWaitingTTLIsInvalid
	}
	cmd.waitingTTL = waitingTTL

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrEscalateStaleOrdersCommandIsNotConstructed)
}

// WaitingTTL returns how long an order may wait unclaimed before escalation.
func (c EscalateStaleOrdersCommand) WaitingTTL() time.Duration { return c.waitingTTL }
