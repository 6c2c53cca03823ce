package models

import "github.com/google/uuid"

// Workshop is a service-provider entry in the public directory
type Workshop struct {
	BaseModel
	Name         string     `json:"name" gorm:"size:255;not null;index"`
	CNPJ         string     `json:"cnpj,omitempty" gorm:"column:cnpj;size:18"`
	Email        string     `json:"email,omitempty" gorm:"size:255"`
	Phone        string     `json:"phone" gorm:"size:20;not null"`
	Whatsapp     string     `json:"whatsapp,omitempty" gorm:"size:20"`
	CEP          string     `json:"cep,omitempty" gorm:"column:cep;size:8"`
	Address      string     `json:"address,omitempty" gorm:"size:255"`
	Number       string     `json:"number,omitempty" gorm:"size:20"`
	Complement   string     `json:"complement,omitempty" gorm:"size:100"`
	Neighborhood string     `json:"neighborhood,omitempty" gorm:"size:100;index"`
	City         string     `json:"city,omitempty" gorm:"size:100;index"`
	State        string     `json:"state,omitempty" gorm:"size:2"`
	Website      string     `json:"website,omitempty" gorm:"size:255"`
	Facebook     string     `json:"facebook,omitempty" gorm:"size:255"`
	Instagram    string     `json:"instagram,omitempty" gorm:"size:255"`
	Description  string     `json:"description,omitempty" gorm:"type:text"`
	UserID       *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for Workshop
func (Workshop) TableName() string {
	return "workshops"
}
