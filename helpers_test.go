package main

// Shared builders for check tests.

func testSpace(expressID int64, globalID, name, longName string, defs ...PropertyDefinition) *Entity {
	return &Entity{
		ExpressID:    expressID,
		GlobalID:     globalID,
		Type:         "IfcSpace",
		Name:         name,
		LongName:     longName,
		PropertyDefs: defs,
	}
}

func areaQuantitySet(name string, value float64) QuantitySet {
	return QuantitySet{
		Name:       "Qto_SpaceBaseQuantities",
		Quantities: []Quantity{{Name: name, Kind: QuantityArea, Value: value}},
	}
}

func heightQuantitySet(name string, value float64) QuantitySet {
	return QuantitySet{
		Name:       "Qto_SpaceBaseQuantities",
		Quantities: []Quantity{{Name: name, Kind: QuantityLength, Value: value}},
	}
}

func numberPropertySet(propName string, value float64) PropertySet {
	return PropertySet{
		Name:       "Pset_SpaceCommon",
		Properties: []Property{{Name: propName, Value: NominalValue{Kind: ValueNumber, Number: value}}},
	}
}

func testModel(entities ...*Entity) *Model {
	model := &Model{
		Schema:     "IFC4",
		SourcePath: "test.json",
		byCategory: make(map[string][]*Entity),
	}
	for _, e := range entities {
		model.byCategory[e.Type] = append(model.byCategory[e.Type], e)
	}
	return model
}
