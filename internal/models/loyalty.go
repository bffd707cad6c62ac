package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Loyalty é o saldo de pontos de um cliente (1:1 com Client).
// PointsTotal é monotônico; PointsAvailable é o saldo gastável.
type Loyalty struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID uuid.UUID `gorm:"column:cliente_id;type:uuid;not null;uniqueIndex" json:"cliente_id"`

	PointsTotal     int    `gorm:"column:pontos_totais;default:0" json:"pontos_totais"`
	PointsAvailable int    `gorm:"column:pontos_disponiveis;default:0" json:"pontos_disponiveis"`
	Tier            string `gorm:"column:nivel;size:20;default:'bronze'" json:"nivel"`

	Events []LoyaltyEvent `gorm:"foreignKey:LoyaltyID" json:"historico,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Loyalty) TableName() string { return "fidelidade" }

func (l *Loyalty) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// LoyaltyEvent registra cada acúmulo de pontos.
type LoyaltyEvent struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	LoyaltyID     uuid.UUID  `gorm:"column:fidelidade_id;type:uuid;not null;index" json:"fidelidade_id"`
	AppointmentID *uuid.UUID `gorm:"column:agendamento_id;type:uuid" json:"agendamento_id,omitempty"`

	Points int    `gorm:"column:pontos;not null" json:"pontos"`
	Reason string `gorm:"column:motivo;size:100" json:"motivo"`

	CreatedAt time.Time `json:"created_at"`
}

func (LoyaltyEvent) TableName() string { return "fidelidade_eventos" }

func (e *LoyaltyEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
