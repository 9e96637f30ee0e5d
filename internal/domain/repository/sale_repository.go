package repository

import "context"

// SaleRepository exposes the sales lookups needed by the inventory rules.
type SaleRepository interface {
	// ExistsByVeiculoChassi reports whether any sale references the vehicle.
	ExistsByVeiculoChassi(ctx context.Context, chassi string) (bool, error)
}
