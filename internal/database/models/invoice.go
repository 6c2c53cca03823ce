package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is a stored billing document attached to a maintenance or to one of its items
type Invoice struct {
	BaseModel
	MaintenanceID     uuid.UUID        `json:"maintenance_id" gorm:"type:uuid;not null;index"`
	MaintenanceItemID *uuid.UUID       `json:"maintenance_item_id,omitempty" gorm:"type:uuid;index"`
	InvoiceType       InvoiceType      `json:"invoice_type" gorm:"size:10;not null"`
	FilePath          string           `json:"file_path" gorm:"size:500;not null"`
	FileName          string           `json:"file_name" gorm:"size:255;not null"`
	InvoiceNumber     string           `json:"invoice_number,omitempty" gorm:"size:100"`
	InvoiceDate       *time.Time       `json:"invoice_date,omitempty" gorm:"type:date"`
	TotalAmount       *decimal.Decimal `json:"total_amount,omitempty" gorm:"type:decimal(10,2)"`
}

// TableName specifies the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
