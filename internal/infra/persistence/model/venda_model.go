package model

import (
	"time"

	"github.com/google/uuid"
)

// VendaModel mirrors the 'vendas' table. The chassis FK is what blocks
// deleting vehicles with recorded sales.
type VendaModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VeiculoChassi string    `gorm:"type:varchar(17);not null;index"`
	DataVenda     time.Time `gorm:"not null"`
	Valor         float64   `gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time

	Veiculo *VeiculoModel `gorm:"foreignKey:VeiculoChassi;references:Chassi"`
}

// TableName explicitly sets the table name for GORM.
func (VendaModel) TableName() string {
	return "vendas"
}
