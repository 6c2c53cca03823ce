package handlers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"vehicle-maintenance-backend/internal/service"
)

// invoiceFields are the form keys that may carry invoice files
var invoiceFields = []string{"invoices", "invoices[]"}

// integerFields are decoded as numbers when they arrive as form strings
var integerFields = map[string]bool{
	"kilometers": true,
	"quantity":   true,
}

// jsonFields may arrive as JSON-encoded strings
var jsonFields = map[string]bool{
	"items":      true,
	"checklists": true,
}

var bracketSegment = regexp.MustCompile(`\[([^\]]*)\]`)

// decodeMaintenanceForm turns a multipart form into a create request. Scalars
// are plain values; items and checklists arrive either as JSON strings or as
// bracketed keys such as items[0][name].
func decodeMaintenanceForm(form *multipart.Form) (*service.CreateMaintenanceRequest, []service.InvoiceFile, error) {
	tree := map[string]interface{}{}
	for key, values := range form.Value {
		if len(values) == 0 {
			continue
		}
		path := splitFormKey(key)
		if len(path) == 0 {
			continue
		}
		insertFormValue(tree, path, values[len(values)-1])
	}

	body, err := json.Marshal(normalizeFormTree(tree, ""))
	if err != nil {
		return nil, nil, fmt.Errorf("encode form: %w", err)
	}

	var req service.CreateMaintenanceRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, nil, err
	}

	var files []service.InvoiceFile
	for _, field := range invoiceFields {
		for _, fh := range form.File[field] {
			files = append(files, service.InvoiceFileFromHeader(fh))
		}
	}

	return &req, files, nil
}

// splitFormKey splits "items[0][name]" into ["items", "0", "name"]
func splitFormKey(key string) []string {
	head := key
	if i := strings.Index(key, "["); i >= 0 {
		head = key[:i]
	}
	if head == "" {
		return nil
	}
	path := []string{head}
	for _, m := range bracketSegment.FindAllStringSubmatch(key[len(head):], -1) {
		if m[1] != "" {
			path = append(path, m[1])
		}
	}
	return path
}

func insertFormValue(node map[string]interface{}, path []string, value string) {
	for _, segment := range path[:len(path)-1] {
		child, ok := node[segment].(map[string]interface{})
		if !ok {
			child = map[string]interface{}{}
			node[segment] = child
		}
		node = child
	}
	node[path[len(path)-1]] = value
}

// normalizeFormTree turns maps with numeric keys into ordered lists and
// integer fields into numbers
func normalizeFormTree(node interface{}, key string) interface{} {
	switch v := node.(type) {
	case map[string]interface{}:
		if indexes, ok := numericKeys(v); ok {
			list := make([]interface{}, 0, len(indexes))
			for _, idx := range indexes {
				list = append(list, normalizeFormTree(v[strconv.Itoa(idx)], key+"[]"))
			}
			return list
		}
		out := make(map[string]interface{}, len(v))
		for k, child := range v {
			out[k] = normalizeFormTree(child, k)
		}
		return out
	case string:
		if jsonFields[key] {
			trimmed := strings.TrimSpace(v)
			if trimmed == "" {
				return nil
			}
			if json.Valid([]byte(trimmed)) {
				return json.RawMessage(trimmed)
			}
			return v
		}
		if integerFields[key] {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
			if strings.TrimSpace(v) == "" {
				return nil
			}
		}
		return v
	default:
		return v
	}
}

func numericKeys(m map[string]interface{}) ([]int, bool) {
	if len(m) == 0 {
		return nil, false
	}
	indexes := make([]int, 0, len(m))
	for k := range m {
		n, err := strconv.Atoi(k)
		if err != nil || strconv.Itoa(n) != k {
			return nil, false
		}
		indexes = append(indexes, n)
	}
	sort.Ints(indexes)
	return indexes, true
}
