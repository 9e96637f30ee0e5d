package model

import (
	"time"

	"github.com/google/uuid"
)

// VeiculoModel mirrors the 'veiculos' table. The chassis is the natural
// primary key; the owner reference is a real foreign key so the store, not
// the validation chain, is the final word on referential integrity.
type VeiculoModel struct {
	Chassi         string     `gorm:"type:varchar(17);primary_key"`
	Modelo         string     `gorm:"type:varchar(50);not null"`
	VersaoMotor    string     `gorm:"type:varchar(30);not null;index"`
	Quilometragem  int64      `gorm:"not null"`
	AnoFabricacao  int        `gorm:"not null"`
	Cor            string     `gorm:"type:varchar(30)"`
	Preco          float64    `gorm:"type:numeric(12,2)"`
	ProprietarioID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Proprietario *ProprietarioModel `gorm:"foreignKey:ProprietarioID"`
}

// TableName explicitly sets the table name for GORM.
func (VeiculoModel) TableName() string {
	return "veiculos"
}
