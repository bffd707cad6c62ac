package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin     = "admin"
	RoleGerente   = "gerente"
	RoleAtendente = "atendente"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	EstablishmentID uuid.UUID     `gorm:"column:estabelecimento_id;type:uuid;not null;index" json:"estabelecimento_id"`
	Establishment   Establishment `gorm:"foreignKey:EstablishmentID" json:"estabelecimento"`

	Name         string `gorm:"column:nome;size:100;not null" json:"nome"`
	Email        string `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`
	Role         string `gorm:"column:role;size:20;default:'atendente'" json:"role"`

	Active bool `gorm:"column:ativo;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "usuarios" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
