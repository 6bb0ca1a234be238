package main

import "strings"

// Canonical quantity names accepted in quantity sets, normalized.
var (
	areaQuantityNames   = map[string]bool{"netfloorarea": true, "grossfloorarea": true, "floorarea": true}
	heightQuantityNames = map[string]bool{"height": true, "clearheight": true, "netheight": true}
)

// ExtractArea recovers a floor area in m2 from an entity's property
// definitions. Quantity-set entries of area kind with a canonical name
// win; otherwise any property-set property whose name contains "area"
// and coerces to a number is used. ok is false when nothing usable is
// found — callers must not treat that as 0.
func ExtractArea(entity *Entity) (value float64, ok bool) {
	return extractMeasurement(entity, QuantityArea, areaQuantityNames, "area")
}

// ExtractHeight recovers a clear height in m, preferring length-kind
// quantities with a canonical name and falling back to any property
// whose name contains "height".
func ExtractHeight(entity *Entity) (value float64, ok bool) {
	return extractMeasurement(entity, QuantityLength, heightQuantityNames, "height")
}

// extractMeasurement applies the two-step precedence policy. Each step
// scans every linked definition; malformed values are skipped, not
// raised, so a bad property never hides a good one further on.
func extractMeasurement(entity *Entity, kind QuantityKind, names map[string]bool, keyword string) (float64, bool) {
	for _, def := range entity.PropertyDefs {
		qset, isQset := def.(QuantitySet)
		if !isQset {
			continue
		}
		for _, q := range qset.Quantities {
			if q.Kind != kind {
				continue
			}
			if names[NormalizeText(q.Name)] {
				return q.Value, true
			}
		}
	}

	for _, def := range entity.PropertyDefs {
		pset, isPset := def.(PropertySet)
		if !isPset {
			continue
		}
		for _, p := range pset.Properties {
			if !strings.Contains(NormalizeText(p.Name), keyword) {
				continue
			}
			if value, ok := p.Value.Float(); ok {
				return value, true
			}
		}
	}

	return 0, false
}
