package entity

import (
	"time"

	"github.com/google/uuid"
)

// Venda records a completed sale of a vehicle. Vehicles with recorded sales
// cannot be deleted from the inventory.
type Venda struct {
	ID            uuid.UUID // The unique identifier for the sale.
	VeiculoChassi string    // The chassis of the sold vehicle.
	DataVenda     time.Time // When the sale was closed.
	Valor         float64   // Final sale value.
	CreatedAt     time.Time // Timestamp of when this record was created.
}
