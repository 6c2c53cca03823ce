package models

import "time"

// User represents an account: a vehicle owner or a workshop operator
type User struct {
	BaseModel
	Name            string     `json:"name" gorm:"size:255;not null"`
	Email           string     `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Password        string     `json:"-" gorm:"size:255;not null"`
	UserType        UserType   `json:"user_type" gorm:"size:20;not null"`
	Phone           string     `json:"phone,omitempty" gorm:"size:20"`
	CEP             string     `json:"cep,omitempty" gorm:"column:cep;size:8"`
	Address         string     `json:"address,omitempty" gorm:"size:255"`
	Number          string     `json:"number,omitempty" gorm:"size:20"`
	Complement      string     `json:"complement,omitempty" gorm:"size:100"`
	Neighborhood    string     `json:"neighborhood,omitempty" gorm:"size:100"`
	City            string     `json:"city,omitempty" gorm:"size:100"`
	State           string     `json:"state,omitempty" gorm:"size:2"`
	Country         string     `json:"country,omitempty" gorm:"size:100"`
	Provider        string     `json:"provider,omitempty" gorm:"size:50;index:idx_users_provider"`
	ProviderID      string     `json:"-" gorm:"size:255;index:idx_users_provider"`
	Avatar          string     `json:"avatar,omitempty" gorm:"size:500"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`

	DeviceTokens []DeviceToken `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// IsWorkshop reports whether the account operates a workshop
func (u *User) IsWorkshop() bool {
	return u.UserType == UserTypeWorkshop
}
