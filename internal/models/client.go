package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente final do estabelecimento. Nunca é removido fisicamente:
// desativação é feita via flag ativo.
type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	EstablishmentID uuid.UUID `gorm:"column:estabelecimento_id;type:uuid;not null;index" json:"estabelecimento_id"`

	Name      string     `gorm:"column:nome;size:100;not null" json:"nome"`
	Email     string     `gorm:"column:email;size:100" json:"email"`
	Phone     string     `gorm:"column:telefone;size:20" json:"telefone"`
	BirthDate *time.Time `gorm:"column:data_nascimento" json:"data_nascimento,omitempty"`
	Address   string     `gorm:"column:endereco;size:255" json:"endereco,omitempty"`
	Notes     string     `gorm:"column:observacoes;size:500" json:"observacoes,omitempty"`

	Active bool `gorm:"column:ativo;default:true" json:"ativo"`

	Loyalty *Loyalty `gorm:"foreignKey:ClientID" json:"fidelidade,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clientes" }

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
