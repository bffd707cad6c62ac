package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	EstablishmentID uuid.UUID `gorm:"column:estabelecimento_id;type:uuid;not null;index" json:"estabelecimento_id"`

	ClientID uuid.UUID `gorm:"column:cliente_id;type:uuid;not null" json:"cliente_id"`
	Client   Client    `gorm:"foreignKey:ClientID" json:"cliente"`

	ProfessionalID uuid.UUID    `gorm:"column:profissional_id;type:uuid;not null;index" json:"profissional_id"`
	Professional   Professional `gorm:"foreignKey:ProfessionalID" json:"profissional"`

	ServiceID uuid.UUID `gorm:"column:servico_id;type:uuid;not null" json:"servico_id"`
	Service   Service   `gorm:"foreignKey:ServiceID" json:"servico"`

	DateTime time.Time `gorm:"column:data_hora;not null;index" json:"data_hora"`

	Status string `gorm:"column:status;size:20;default:'agendado'" json:"status"`

	// Snapshot do preço do serviço no momento da criação; alterações
	// posteriores de preço nunca afetam agendamentos passados.
	TotalValue float64 `gorm:"column:valor_total;not null" json:"valor_total"`

	Notes        string `gorm:"column:observacoes;size:500" json:"observacoes,omitempty"`
	ReminderSent bool   `gorm:"column:lembrete_enviado;default:false" json:"lembrete_enviado"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string { return "agendamentos" }

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
