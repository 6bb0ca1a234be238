package main

import (
	"fmt"
	"strconv"
)

// QuantityKind tags a typed quantity inside a quantity set.
type QuantityKind string

const (
	QuantityArea   QuantityKind = "area"
	QuantityLength QuantityKind = "length"
	QuantityCount  QuantityKind = "count"
	QuantityOther  QuantityKind = "other"
)

// Quantity is a typed measurement with a semantic name, e.g.
// NetFloorArea=18.5.
type Quantity struct {
	Name  string
	Kind  QuantityKind
	Value float64
}

// ValueKind tags a loosely-typed nominal value. Wrapped values carry
// exactly one level of indirection, mirroring IFC value wrappers.
type ValueKind string

const (
	ValueNumber  ValueKind = "number"
	ValueText    ValueKind = "text"
	ValueWrapped ValueKind = "wrapped"
	ValueAbsent  ValueKind = "absent"
)

// NominalValue is the loosely-typed payload of a property-set entry.
type NominalValue struct {
	Kind    ValueKind
	Number  float64
	Text    string
	Wrapped *NominalValue
}

// Float coerces the value to a float64. Numbers pass through, numeric
// text parses, wrapped values unwrap one level. Anything else reports
// failure; it never panics and never errors.
func (v NominalValue) Float() (float64, bool) {
	switch v.Kind {
	case ValueNumber:
		return v.Number, true
	case ValueText:
		f, err := strconv.ParseFloat(v.Text, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case ValueWrapped:
		if v.Wrapped == nil || v.Wrapped.Kind == ValueWrapped {
			return 0, false
		}
		return v.Wrapped.Float()
	default:
		return 0, false
	}
}

// Property is a named loosely-typed entry inside a property set.
type Property struct {
	Name  string
	Value NominalValue
}

// PropertyDefinition is the closed set of property containers an
// entity can link to: quantity sets and property sets.
type PropertyDefinition interface {
	isPropertyDefinition()
}

// QuantitySet holds typed quantities (IfcElementQuantity).
type QuantitySet struct {
	Name       string
	Quantities []Quantity
}

// PropertySet holds loosely-typed properties (IfcPropertySet).
type PropertySet struct {
	Name       string
	Properties []Property
}

func (QuantitySet) isPropertyDefinition() {}
func (PropertySet) isPropertyDefinition() {}

// Entity is one building-model object with its linked property
// definitions already resolved.
type Entity struct {
	ExpressID    int64
	GlobalID     string
	Type         string
	Name         string
	LongName     string
	ObjectType   string
	PropertyDefs []PropertyDefinition
}

// knownCategories is the entity vocabulary the model layer can
// resolve. ByType on anything else is a blocked category.
var knownCategories = map[string]bool{
	"IfcProject":        true,
	"IfcSite":           true,
	"IfcBuilding":       true,
	"IfcBuildingStorey": true,
	"IfcSpace":          true,
	"IfcWall":           true,
	"IfcSlab":           true,
	"IfcDoor":           true,
	"IfcWindow":         true,
	"IfcColumn":         true,
	"IfcBeam":           true,
	"IfcStair":          true,
	"IfcRoof":           true,
	"IfcFurniture":      true,
}

// Model is the in-memory building model the checks run over. It is
// loaded once and read-only afterwards.
type Model struct {
	Schema     string
	SourcePath string
	byCategory map[string][]*Entity
}

// ByType returns all entities of a category in document order. A
// category outside the model's vocabulary is an error so callers can
// surface it as a blocked record instead of silently reporting zero.
func (m *Model) ByType(category string) ([]*Entity, error) {
	if entities, ok := m.byCategory[category]; ok {
		return entities, nil
	}
	if knownCategories[category] {
		return nil, nil
	}
	return nil, fmt.Errorf("unknown entity category %q", category)
}

// EntityCount returns the total number of entities in the model.
func (m *Model) EntityCount() int {
	total := 0
	for _, entities := range m.byCategory {
		total += len(entities)
	}
	return total
}
