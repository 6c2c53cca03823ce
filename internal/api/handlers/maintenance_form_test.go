package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFormKey(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"vehicle_id", []string{"vehicle_id"}},
		{"items[0][name]", []string{"items", "0", "name"}},
		{"invoices[]", []string{"invoices"}},
		{"checklists[1][items][freios]", []string{"checklists", "1", "items", "freios"}},
		{"[0]", nil},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, splitFormKey(tt.key))
		})
	}
}

func TestDecodeMaintenanceForm_BracketedItems(t *testing.T) {
	form := &multipart.Form{Value: map[string][]string{
		"vehicle_id":               {"3f1c2b8e-8d4a-4c55-9a51-6b1f0f5a7d10"},
		"maintenance_type":         {"Revisão"},
		"kilometers":               {"1000", "1500"},
		"is_manufacturer_required": {"true"},
		"items[10][name]":          {"Última"},
		"items[10][quantity]":      {"3"},
		"items[2][name]":           {"Primeira"},
		"items[2][quantity]":       {"1"},
		"items[2][unit_price]":     {"19.90"},
	}}

	req, files, err := decodeMaintenanceForm(form)

	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, "Revisão", req.MaintenanceType)
	require.NotNil(t, req.Kilometers)
	assert.Equal(t, 1500, *req.Kilometers)
	assert.True(t, req.IsManufacturerRequired.Bool())
	require.Len(t, req.Items, 2)
	assert.Equal(t, "Primeira", req.Items[0].Name)
	assert.Equal(t, "19.9", req.Items[0].UnitPrice.String())
	assert.Equal(t, "Última", req.Items[1].Name)
	assert.Equal(t, 3, req.Items[1].Quantity)
}

func TestDecodeMaintenanceForm_JSONStrings(t *testing.T) {
	form := &multipart.Form{Value: map[string][]string{
		"items":      {`[{"name":"Óleo","quantity":4}]`},
		"checklists": {` [{"checklist_type":"final","items":["limpeza","teste"],"notes":"ok"}] `},
		"kilometers": {""},
	}}

	req, _, err := decodeMaintenanceForm(form)

	require.NoError(t, err)
	assert.Nil(t, req.Kilometers)
	require.Len(t, req.Items, 1)
	assert.Equal(t, 4, req.Items[0].Quantity)
	require.Len(t, req.Checklists, 1)
	assert.Equal(t, "final", req.Checklists[0].ChecklistType)
	assert.JSONEq(t, `["limpeza","teste"]`, string(req.Checklists[0].Items))
}

func TestDecodeMaintenanceForm_EmptyItems(t *testing.T) {
	form := &multipart.Form{Value: map[string][]string{"items": {""}}}

	req, _, err := decodeMaintenanceForm(form)

	require.NoError(t, err)
	assert.Empty(t, req.Items)
}

func TestDecodeMaintenanceForm_BadTypes(t *testing.T) {
	form := &multipart.Form{Value: map[string][]string{"kilometers": {"muitos"}}}

	_, _, err := decodeMaintenanceForm(form)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "kilometers", typeErr.Field)
}

func TestDecodeMaintenanceForm_Files(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("maintenance_type", "Pintura"))
	single, err := writer.CreateFormFile("invoices", "a.pdf")
	require.NoError(t, err)
	_, _ = single.Write([]byte("%PDF-1.7"))
	multi, err := writer.CreateFormFile("invoices[]", "b.pdf")
	require.NoError(t, err)
	_, _ = multi.Write([]byte("%PDF-1.7"))
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	defer form.RemoveAll()

	req, files, err := decodeMaintenanceForm(form)

	require.NoError(t, err)
	assert.Equal(t, "Pintura", req.MaintenanceType)
	require.Len(t, files, 2)
	assert.Equal(t, "a.pdf", files[0].Filename)
	assert.Equal(t, "b.pdf", files[1].Filename)
	assert.Equal(t, int64(8), files[1].Size)
}
