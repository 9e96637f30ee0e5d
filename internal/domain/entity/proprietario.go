package entity

import (
	"time"

	"github.com/google/uuid"
)

// Proprietario represents the registered owner of one or more vehicles.
type Proprietario struct {
	ID        uuid.UUID // The unique identifier for the owner.
	Nome      string    // Full name or company name.
	Documento string    // CPF/CNPJ document number.
	Telefone  string    // Contact phone number.
	CreatedAt time.Time // Timestamp of when this owner was registered.
	UpdatedAt time.Time // Timestamp of the last modification.
}
