package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	EstablishmentID uuid.UUID `gorm:"column:estabelecimento_id;type:uuid;not null;index" json:"estabelecimento_id"`

	Name            string  `gorm:"column:nome;size:100;not null" json:"nome"`
	Description     string  `gorm:"column:descricao;size:255" json:"descricao"`
	Price           float64 `gorm:"column:preco;not null" json:"preco"`
	DurationMinutes int     `gorm:"column:duracao_minutos;not null" json:"duracao_minutos"`
	Category        string  `gorm:"column:categoria;size:50" json:"categoria"`

	Active bool `gorm:"column:ativo;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Service) TableName() string { return "servicos" }

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
