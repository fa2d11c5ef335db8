package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// defaultLimit is used when a paginated filter omits its limit.
const defaultLimit = 20

// SQLInput carries a free-form read-only statement for the passthrough tool.
type SQLInput struct {
	SQL string `json:"sql" validate:"required,min=5"`
}

type FactoryFilter struct {
	FactoryID *int `json:"factory_id"`
}

type MachineFilter struct {
	Status    *string `json:"status" validate:"omitempty,oneof=operational maintenance offline"`
	FactoryID *int    `json:"factory_id"`
}

type WorkOrderFilter struct {
	Status    *string `json:"status" validate:"omitempty,oneof=planned in_progress completed cancelled"`
	Priority  *string `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	FactoryID *int    `json:"factory_id"`
	Limit     *int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

type InspectionFilter struct {
	Result    *string `json:"result" validate:"omitempty,oneof=pass fail conditional_pass"`
	FactoryID *int    `json:"factory_id"`
	Limit     *int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

type MaintenanceFilter struct {
	MachineID       *int    `json:"machine_id"`
	MaintenanceType *string `json:"maintenance_type" validate:"omitempty,oneof=preventive corrective emergency"`
	Limit           *int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

func (f WorkOrderFilter) LimitOrDefault() int   { return limitOrDefault(f.Limit) }
func (f InspectionFilter) LimitOrDefault() int  { return limitOrDefault(f.Limit) }
func (f MaintenanceFilter) LimitOrDefault() int { return limitOrDefault(f.Limit) }

func limitOrDefault(limit *int) int {
	if limit != nil {
		return *limit
	}
	return defaultLimit
}

// DecodeStrict parses a filter payload, rejecting unknown fields and
// out-of-range values before any query runs. A missing or null payload is
// treated as an empty filter.
func DecodeStrict(raw []byte, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return Validate(v)
}

// Validate checks range and enum constraints on an already-built filter.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
