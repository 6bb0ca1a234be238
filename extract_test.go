package main

import "testing"

func TestExtractAreaQuantitySetPrecedence(t *testing.T) {
	// Both a canonical quantity and a property-set fallback are
	// present; the quantity wins.
	space := testSpace(1, "GID-1", "Bedroom 01", "",
		areaQuantitySet("NetFloorArea", 18.5),
		numberPropertySet("Area (gross)", 99.0),
	)

	got, ok := ExtractArea(space)
	if !ok || got != 18.5 {
		t.Fatalf("ExtractArea = (%v, %v), want (18.5, true)", got, ok)
	}
}

func TestExtractAreaPropertySetFallback(t *testing.T) {
	space := testSpace(1, "GID-1", "Bedroom 01", "",
		numberPropertySet("Area (gross)", 99.0),
	)

	got, ok := ExtractArea(space)
	if !ok || got != 99.0 {
		t.Fatalf("ExtractArea = (%v, %v), want (99.0, true)", got, ok)
	}
}

func TestExtractAreaIgnoresNonCanonicalQuantityNames(t *testing.T) {
	space := testSpace(1, "GID-1", "Bedroom 01", "",
		areaQuantitySet("PerimeterArea", 7.0),
		numberPropertySet("Floor area", 12.5),
	)

	got, ok := ExtractArea(space)
	if !ok || got != 12.5 {
		t.Fatalf("non-canonical quantity should be skipped, got (%v, %v)", got, ok)
	}
}

func TestExtractHeightIgnoresWrongKind(t *testing.T) {
	// Area-kind quantity named like a height must not satisfy the
	// height extraction.
	space := testSpace(1, "GID-1", "Bedroom 01", "",
		QuantitySet{Quantities: []Quantity{{Name: "Height", Kind: QuantityArea, Value: 5.0}}},
	)

	if _, ok := ExtractHeight(space); ok {
		t.Fatalf("expected no height from area-kind quantity")
	}
}

func TestExtractHeightCanonicalNames(t *testing.T) {
	for _, name := range []string{"Height", "ClearHeight", "NetHeight"} {
		space := testSpace(1, "GID-1", "Bedroom 01", "", heightQuantitySet(name, 2.7))
		got, ok := ExtractHeight(space)
		if !ok || got != 2.7 {
			t.Errorf("ExtractHeight with %q = (%v, %v), want (2.7, true)", name, got, ok)
		}
	}
}

func TestExtractSkipsMalformedValuesAndContinues(t *testing.T) {
	space := testSpace(1, "GID-1", "Bedroom 01", "",
		PropertySet{Properties: []Property{
			{Name: "Area note", Value: NominalValue{Kind: ValueText, Text: "approx."}},
			{Name: "Net area", Value: NominalValue{Kind: ValueNumber, Number: 11.2}},
		}},
	)

	got, ok := ExtractArea(space)
	if !ok || got != 11.2 {
		t.Fatalf("malformed value should be skipped, got (%v, %v)", got, ok)
	}
}

func TestExtractAbsent(t *testing.T) {
	space := testSpace(1, "GID-1", "Bedroom 01", "",
		numberPropertySet("Volume", 30.0),
	)

	if got, ok := ExtractArea(space); ok || got != 0 {
		t.Fatalf("expected absent area, got (%v, %v)", got, ok)
	}
	if _, ok := ExtractHeight(space); ok {
		t.Fatalf("expected absent height")
	}
}

func TestNominalValueFloat(t *testing.T) {
	wrappedNumber := NominalValue{Kind: ValueNumber, Number: 2.45}
	doubleWrapped := NominalValue{Kind: ValueWrapped, Wrapped: &wrappedNumber}

	tests := []struct {
		name  string
		value NominalValue
		want  float64
		ok    bool
	}{
		{"number", NominalValue{Kind: ValueNumber, Number: 4.2}, 4.2, true},
		{"numeric text", NominalValue{Kind: ValueText, Text: "3.14"}, 3.14, true},
		{"non-numeric text", NominalValue{Kind: ValueText, Text: "tall"}, 0, false},
		{"wrapped number", NominalValue{Kind: ValueWrapped, Wrapped: &wrappedNumber}, 2.45, true},
		{"double wrapped rejected", NominalValue{Kind: ValueWrapped, Wrapped: &doubleWrapped}, 0, false},
		{"absent", NominalValue{Kind: ValueAbsent}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.value.Float()
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Float() = (%v, %v), want (%v, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}
