// Package records defines the shape of the flat output record and validates
// assembled records against it before they are persisted or exported.
package records

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nimali/invoice-wizard/internal/entity"
)

// recordSchema is the contract with downstream consumers of the export:
// every value is a non-empty string, absent fields are omitted entirely, and
// description/supplier/filename are always present.
const recordSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["filename", "supplier", "description"],
	"additionalProperties": false,
	"properties": {
		"filename":     {"type": "string", "minLength": 1},
		"supplier":     {"enum": ["Colorama", "AAH", "Alliance", "Lexon", "Unknown"]},
		"invoice_no":   {"type": "string", "minLength": 1},
		"date":         {"type": "string", "minLength": 1},
		"total":        {"type": "string", "minLength": 1},
		"description":  {"type": "string", "minLength": 1},
		"pack_size":    {"type": "string", "minLength": 1},
		"qty":          {"type": "string", "minLength": 1},
		"unit_price":   {"type": "string", "minLength": 1},
		"vat_code":     {"type": "string", "minLength": 1},
		"vat_rate":     {"type": "string", "minLength": 1},
		"net_price":    {"type": "string", "minLength": 1},
		"net_amount":   {"type": "string", "minLength": 1},
		"vat_amount":   {"type": "string", "minLength": 1},
		"product_code": {"type": "string", "minLength": 1},
		"line_total":   {"type": "string", "minLength": 1}
	}
}`

var compiled = jsonschema.MustCompileString("record.json", recordSchema)

// Validate checks one assembled record against the output schema.
func Validate(rec entity.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := compiled.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
