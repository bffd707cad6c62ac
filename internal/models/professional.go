package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Professional struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	EstablishmentID uuid.UUID `gorm:"column:estabelecimento_id;type:uuid;not null;index" json:"estabelecimento_id"`

	Name  string `gorm:"column:nome;size:100;not null" json:"nome"`
	Email string `gorm:"column:email;size:100" json:"email"`
	Phone string `gorm:"column:telefone;size:20" json:"telefone"`

	Specialties StringList   `gorm:"column:especialidades;type:jsonb" json:"especialidades"`
	WorkHours   WeekSchedule `gorm:"column:horario_trabalho;type:jsonb" json:"horario_trabalho"`

	Active bool `gorm:"column:ativo;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Professional) TableName() string { return "profissionais" }

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
