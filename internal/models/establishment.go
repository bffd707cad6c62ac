package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Establishment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"column:nome;size:100;not null" json:"nome"`
	ServiceType string `gorm:"column:tipo_servico;size:50" json:"tipo_servico"`
	Phone       string `gorm:"column:telefone;size:20" json:"telefone"`
	Email       string `gorm:"column:email;size:100" json:"email"`
	Address     string `gorm:"column:endereco;size:255" json:"endereco"`
	WhatsApp    string `gorm:"column:whatsapp;size:20" json:"whatsapp"`

	OpeningHours WeekSchedule `gorm:"column:horario_funcionamento;type:jsonb" json:"horario_funcionamento"`

	Active bool `gorm:"column:ativo;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Establishment) TableName() string { return "estabelecimentos" }

func (e *Establishment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
