package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Maintenance is one recorded service event for a vehicle
type Maintenance struct {
	BaseModel
	VehicleID              uuid.UUID       `json:"vehicle_id" gorm:"type:uuid;not null;index"`
	UserID                 uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	WorkshopID             *uuid.UUID      `json:"workshop_id,omitempty" gorm:"type:uuid;index"`
	WorkshopName           string          `json:"workshop_name,omitempty" gorm:"size:255"`
	MaintenanceType        string          `json:"maintenance_type" gorm:"size:100;not null"`
	Description            string          `json:"description,omitempty" gorm:"type:text"`
	ServiceCategory        ServiceCategory `json:"service_category" gorm:"size:20;not null;index"`
	MaintenanceDate        time.Time       `json:"maintenance_date" gorm:"type:date;not null;index"`
	Kilometers             *int            `json:"kilometers,omitempty"`
	IsManufacturerRequired bool            `json:"is_manufacturer_required" gorm:"not null"`

	Vehicle    *Vehicle          `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	User       *User             `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Workshop   *Workshop         `json:"workshop,omitempty" gorm:"foreignKey:WorkshopID;constraint:OnDelete:SET NULL"`
	Items      []MaintenanceItem `json:"items,omitempty" gorm:"foreignKey:MaintenanceID;constraint:OnDelete:CASCADE"`
	Invoices   []Invoice         `json:"invoices,omitempty" gorm:"foreignKey:MaintenanceID;constraint:OnDelete:CASCADE"`
	Checklists []Checklist       `json:"checklists,omitempty" gorm:"foreignKey:MaintenanceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Maintenance
func (Maintenance) TableName() string {
	return "maintenances"
}

// MaintenanceItem is one part or service line within a maintenance
type MaintenanceItem struct {
	BaseModel
	MaintenanceID uuid.UUID        `json:"maintenance_id" gorm:"type:uuid;not null;index"`
	Name          string           `json:"name" gorm:"size:255;not null"`
	Description   string           `json:"description,omitempty" gorm:"type:text"`
	Quantity      int              `json:"quantity" gorm:"not null"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty" gorm:"type:decimal(10,2)"`
	TotalPrice    *decimal.Decimal `json:"total_price,omitempty" gorm:"type:decimal(10,2)"`
	PartNumber    string           `json:"part_number,omitempty" gorm:"size:100"`

	Invoices []Invoice `json:"invoices,omitempty" gorm:"foreignKey:MaintenanceItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for MaintenanceItem
func (MaintenanceItem) TableName() string {
	return "maintenance_items"
}
