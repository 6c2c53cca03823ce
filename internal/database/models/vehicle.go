package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle represents a registered vehicle, identified by plate and RENAVAM
type Vehicle struct {
	BaseModel
	Plate   string `json:"plate" gorm:"size:10;not null;uniqueIndex"`
	Renavam string `json:"renavam" gorm:"size:20;not null;uniqueIndex"`
	Brand   string `json:"brand" gorm:"size:100;not null"`
	Model   string `json:"model" gorm:"size:100;not null"`
	Year    int    `json:"year" gorm:"not null"`
	Color   string `json:"color,omitempty" gorm:"size:50"`
	Chassis string `json:"chassis,omitempty" gorm:"size:50"`
	Engine  string `json:"engine,omitempty" gorm:"size:50"`

	Owners       []UserVehicle `json:"owners,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Maintenances []Maintenance `json:"maintenances,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Vehicle
func (Vehicle) TableName() string {
	return "vehicles"
}

// UserVehicle is the time-stamped ownership link between a user and a vehicle
type UserVehicle struct {
	BaseModel
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_vehicle"`
	VehicleID      uuid.UUID  `json:"vehicle_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_vehicle"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty" gorm:"type:date"`
	SaleDate       *time.Time `json:"sale_date,omitempty" gorm:"type:date"`
	IsCurrentOwner bool       `json:"is_current_owner" gorm:"not null"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}

// TableName specifies the table name for UserVehicle
func (UserVehicle) TableName() string {
	return "user_vehicles"
}
