package service

import (
	"testing"

	apperrors "vehicle-maintenance-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	v := NewValidator()

	t.Run("nested item errors use dotted paths", func(t *testing.T) {
		req := &CreateMaintenanceRequest{
			VehicleID:       "not-a-uuid",
			MaintenanceType: "Revisão",
			ServiceCategory: "tuning",
			MaintenanceDate: "15/01/2024",
			Items:           []MaintenanceItemInput{{Name: "Óleo", Quantity: 0}},
		}

		err := ValidateStruct(v, req)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))

		group, ok := apperrors.AsValidationErrors(err)
		require.True(t, ok)
		assert.Equal(t,
			[]string{"items.0.quantity", "maintenance_date", "service_category", "vehicle_id"},
			group.FieldNames())
	})

	t.Run("enum messages list allowed values", func(t *testing.T) {
		err := ValidateStruct(v, &RegisterDeviceTokenRequest{Token: "abc", DeviceType: "blackberry"})
		group, ok := apperrors.AsValidationErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{"must be one of: android, ios, web"}, group.Fields()["device_type"])
	})

	t.Run("valid request", func(t *testing.T) {
		req := &CreateMaintenanceRequest{
			VehicleID:       "6b0c7a4e-7a51-4a3c-9f0e-4d2f5d1d7c11",
			MaintenanceType: "Revisão 10.000 km",
			ServiceCategory: "mechanical",
			MaintenanceDate: "2024-01-15",
		}
		assert.NoError(t, ValidateStruct(v, req))
	})
}

func TestValidateStruct_BlankPointerFields(t *testing.T) {
	v := NewValidator()
	blank := ""

	t.Run("blank clears instead of failing the format check", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(v, &UpdateMaintenanceRequest{WorkshopID: &blank}))
		assert.NoError(t, ValidateStruct(v, &UpdateWorkshopRequest{Email: &blank, Website: &blank, State: &blank}))
	})

	t.Run("non-blank values are still checked", func(t *testing.T) {
		badID, badEmail, badURL, badState := "oficina-1", "oficina", "not a url", "SAO"

		err := ValidateStruct(v, &UpdateMaintenanceRequest{WorkshopID: &badID})
		group, ok := apperrors.AsValidationErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{"must be a valid UUID"}, group.Fields()["workshop_id"])

		err = ValidateStruct(v, &UpdateWorkshopRequest{Email: &badEmail, Website: &badURL, State: &badState})
		group, ok = apperrors.AsValidationErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{"email", "state", "website"}, group.FieldNames())
		assert.Equal(t, []string{"must be exactly 2 characters"}, group.Fields()["state"])
	})
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "items.0.quantity", fieldPath("CreateMaintenanceRequest.items[0].quantity"))
	assert.Equal(t, "checklists.1.checklist_type", fieldPath("CreateMaintenanceRequest.checklists[1].checklist_type"))
	assert.Equal(t, "plate", fieldPath("CreateVehicleRequest.plate"))
}
