package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Checklist is a structured pre/post-service inspection record
type Checklist struct {
	BaseModel
	MaintenanceID uuid.UUID      `json:"maintenance_id" gorm:"type:uuid;not null;index"`
	ChecklistType ChecklistType  `json:"checklist_type" gorm:"size:10;not null"`
	Items         datatypes.JSON `json:"items" swaggertype:"object"`
	Notes         string         `json:"notes,omitempty" gorm:"type:text"`
}

// TableName specifies the table name for Checklist
func (Checklist) TableName() string {
	return "checklists"
}
