package models

// UserType distinguishes individual accounts from workshop operators
type UserType string

const (
	UserTypeUser     UserType = "user"
	UserTypeWorkshop UserType = "workshop"
)

// ServiceCategory is the closed set of maintenance categories
type ServiceCategory string

const (
	ServiceCategoryMechanical ServiceCategory = "mechanical"
	ServiceCategoryElectrical ServiceCategory = "electrical"
	ServiceCategorySuspension ServiceCategory = "suspension"
	ServiceCategoryPainting   ServiceCategory = "painting"
	ServiceCategoryFinishing  ServiceCategory = "finishing"
	ServiceCategoryInterior   ServiceCategory = "interior"
	ServiceCategoryOther      ServiceCategory = "other"
)

// InvoiceType tells whether an invoice covers a single item or the whole maintenance
type InvoiceType string

const (
	InvoiceTypeItem    InvoiceType = "item"
	InvoiceTypeGeneral InvoiceType = "general"
)

// ChecklistType marks a checklist as taken before or after the service
type ChecklistType string

const (
	ChecklistTypeInitial ChecklistType = "initial"
	ChecklistTypeFinal   ChecklistType = "final"
)

// DeviceType identifies the platform of a push token
type DeviceType string

const (
	DeviceTypeAndroid DeviceType = "android"
	DeviceTypeIOS     DeviceType = "ios"
	DeviceTypeWeb     DeviceType = "web"
)

// IsValid checks if the UserType is valid
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeUser, UserTypeWorkshop:
		return true
	}
	return false
}

// IsValid checks if the ServiceCategory is valid
func (c ServiceCategory) IsValid() bool {
	switch c {
	case ServiceCategoryMechanical, ServiceCategoryElectrical, ServiceCategorySuspension,
		ServiceCategoryPainting, ServiceCategoryFinishing, ServiceCategoryInterior, ServiceCategoryOther:
		return true
	}
	return false
}

// IsValid checks if the InvoiceType is valid
func (t InvoiceType) IsValid() bool {
	switch t {
	case InvoiceTypeItem, InvoiceTypeGeneral:
		return true
	}
	return false
}

// IsValid checks if the ChecklistType is valid
func (t ChecklistType) IsValid() bool {
	switch t {
	case ChecklistTypeInitial, ChecklistTypeFinal:
		return true
	}
	return false
}

// IsValid checks if the DeviceType is valid
func (t DeviceType) IsValid() bool {
	switch t {
	case DeviceTypeAndroid, DeviceTypeIOS, DeviceTypeWeb:
		return true
	}
	return false
}
