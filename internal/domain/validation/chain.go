// Package validation implements the ordered business-rule checks that run
// before a vehicle is admitted for persistence. Each rule is a value
// implementing Validator; a Chain composes them explicitly, in caller-chosen
// order, and stops at the first violated rule. The chain only reads related
// state, it never persists anything: the store's own constraints remain the
// authoritative enforcement, these checks exist for early feedback.
package validation

import (
	"context"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
)

// Validator checks a single business invariant against persisted state.
// Implementations must be stateless between calls so one chain instance can
// serve concurrent validations.
type Validator interface {
	Validate(ctx context.Context, veiculo *entity.Veiculo) error
}

// Chain runs its validators in construction order. The first failure
// short-circuits: later validators are not invoked and the caller sees
// exactly that one reason.
type Chain struct {
	validators []Validator
}

// NewChain assembles a chain from validators in the order given. Order is a
// policy decision made by the caller, not inferred.
func NewChain(validators ...Validator) *Chain {
	return &Chain{validators: validators}
}

// Validate runs the chain against the vehicle, returning nil only when every
// validator passes.
func (c *Chain) Validate(ctx context.Context, veiculo *entity.Veiculo) error {
	for _, v := range c.validators {
		if err := v.Validate(ctx, veiculo); err != nil {
			return err
		}
	}

	return nil
}
