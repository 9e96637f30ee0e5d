package entity

import (
	"time"

	"github.com/google/uuid"
)

// Veiculo represents a Volvo truck in the dealership's inventory. The chassis
// number is the natural key and must be unique across the whole fleet.
type Veiculo struct {
	Chassi         string        // The chassis number, unique natural key.
	Modelo         string        // Truck model, e.g. "FH 540".
	VersaoMotor    string        // Engine version, used as a listing filter.
	Quilometragem  int64         // Mileage in kilometers; listings are ordered by it.
	AnoFabricacao  int           // Year of manufacture.
	Cor            string        // Color.
	Preco          float64       // Asking price.
	ProprietarioID *uuid.UUID    // Optional reference to the current owner. Nil while unsold.
	Proprietario   *Proprietario // The owner record, populated on detail lookups.
	CreatedAt      time.Time     // Timestamp of when this vehicle was registered.
	UpdatedAt      time.Time     // Timestamp of the last modification.
}

// HasProprietario reports whether the vehicle carries an owner reference.
func (v *Veiculo) HasProprietario() bool {
	return v.ProprietarioID != nil
}
