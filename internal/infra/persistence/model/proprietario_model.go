package model

import (
	"time"

	"github.com/google/uuid"
)

// ProprietarioModel mirrors the 'proprietarios' table.
type ProprietarioModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Nome      string    `gorm:"type:varchar(100);not null"`
	Documento string    `gorm:"type:varchar(20);unique;not null"`
	Telefone  string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProprietarioModel) TableName() string {
	return "proprietarios"
}
