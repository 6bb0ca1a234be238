package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// The model document is the JSON export this tool consumes in place of
// a native IFC reader: one object per entity, property containers
// flattened onto it, nominal values kept loosely typed.

type modelDocument struct {
	Schema   string           `json:"schema"`
	Entities []entityDocument `json:"entities"`
}

type entityDocument struct {
	ExpressID  int64                `json:"express_id"`
	GlobalID   string               `json:"global_id"`
	Type       string               `json:"type"`
	Name       string               `json:"name"`
	LongName   string               `json:"long_name"`
	ObjectType string               `json:"object_type"`
	Defs       []definitionDocument `json:"property_definitions"`
}

type definitionDocument struct {
	Kind       string             `json:"kind"` // "quantity_set" or "property_set"
	Name       string             `json:"name"`
	Quantities []quantityDocument `json:"quantities,omitempty"`
	Properties []propertyDocument `json:"properties,omitempty"`
}

type quantityDocument struct {
	Name  string  `json:"name"`
	Kind  string  `json:"kind"` // "area", "length", "count"
	Value float64 `json:"value"`
}

type propertyDocument struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// LoadModel reads a JSON model document into an in-memory Model.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	var doc modelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}

	model := &Model{
		Schema:     doc.Schema,
		SourcePath: path,
		byCategory: make(map[string][]*Entity),
	}
	if model.Schema == "" {
		model.Schema = "unknown"
	}

	for i, ed := range doc.Entities {
		if ed.Type == "" {
			return nil, fmt.Errorf("parse model %s: entity %d has no type", path, i)
		}
		entity := &Entity{
			ExpressID:  ed.ExpressID,
			GlobalID:   ed.GlobalID,
			Type:       ed.Type,
			Name:       ed.Name,
			LongName:   ed.LongName,
			ObjectType: ed.ObjectType,
		}
		for _, dd := range ed.Defs {
			entity.PropertyDefs = append(entity.PropertyDefs, decodeDefinition(dd))
		}
		model.byCategory[ed.Type] = append(model.byCategory[ed.Type], entity)
	}

	return model, nil
}

func decodeDefinition(dd definitionDocument) PropertyDefinition {
	if dd.Kind == "quantity_set" {
		qset := QuantitySet{Name: dd.Name}
		for _, qd := range dd.Quantities {
			qset.Quantities = append(qset.Quantities, Quantity{
				Name:  qd.Name,
				Kind:  decodeQuantityKind(qd.Kind),
				Value: qd.Value,
			})
		}
		return qset
	}

	pset := PropertySet{Name: dd.Name}
	for _, pd := range dd.Properties {
		pset.Properties = append(pset.Properties, Property{
			Name:  pd.Name,
			Value: decodeNominalValue(pd.Value),
		})
	}
	return pset
}

func decodeQuantityKind(kind string) QuantityKind {
	switch kind {
	case "area":
		return QuantityArea
	case "length":
		return QuantityLength
	case "count":
		return QuantityCount
	default:
		return QuantityOther
	}
}

// decodeNominalValue keeps property values loosely typed: numbers and
// strings pass through, {"wrapped_value": ...} becomes one level of
// wrapping, anything unreadable is absent rather than an error. An
// explicit null is absent too; unmarshaling null into a float64 is a
// no-op that would smuggle in a zero.
func decodeNominalValue(raw json.RawMessage) NominalValue {
	if len(raw) == 0 || string(raw) == "null" {
		return NominalValue{Kind: ValueAbsent}
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return NominalValue{Kind: ValueNumber, Number: number}
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return NominalValue{Kind: ValueText, Text: text}
	}

	var wrapper struct {
		Wrapped json.RawMessage `json:"wrapped_value"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Wrapped) > 0 {
		inner := decodeNominalValue(wrapper.Wrapped)
		return NominalValue{Kind: ValueWrapped, Wrapped: &inner}
	}

	return NominalValue{Kind: ValueAbsent}
}
