package payload

import (
	"encoding/json"
	"reflect"
	"testing"
)

// TestGenerateDeterminism tests that the same (tier, seed) pair yields an
// identical dataset, values included
func TestGenerateDeterminism(t *testing.T) {
	for _, tier := range Tiers() {
		t.Run(string(tier), func(t *testing.T) {
			a := Generate(tier, DefaultSeed)
			b := Generate(tier, DefaultSeed)

			if !reflect.DeepEqual(a, b) {
				t.Errorf("datasets for (%s, %d) differ between runs", tier, DefaultSeed)
			}
		})
	}
}

// TestGenerateSeedVariation tests that different seeds yield different values
// but identical shapes
func TestGenerateSeedVariation(t *testing.T) {
	a := Generate(TierMedium, 42)
	b := Generate(TierMedium, 43)

	if reflect.DeepEqual(a, b) {
		t.Error("datasets for different seeds are identical")
	}
	if ShapeOf(a) != ShapeOf(b) {
		t.Errorf("shapes for different seeds differ: %+v vs %+v", ShapeOf(a), ShapeOf(b))
	}
}

// TestGenerateShapes tests the collection sizes per tier
func TestGenerateShapes(t *testing.T) {
	testCases := []struct {
		tier  ComplexityTier
		shape Shape
	}{
		{TierSmall, Shape{
			Users:             1,
			Addresses:         2,
			Orders:            1,
			OrderItems:        2,
			TrackingEvents:    1,
			Skills:            3,
			Education:         1,
			Languages:         1,
			SocialConnections: 1,
		}},
		{TierMedium, Shape{
			Users:             10,
			Addresses:         30,
			Orders:            50,
			OrderItems:        150,
			TrackingEvents:    100,
			Skills:            80,
			Education:         20,
			Languages:         30,
			SocialConnections: 20,
		}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.tier), func(t *testing.T) {
			got := ShapeOf(GenerateDefault(tc.tier))
			if got != tc.shape {
				t.Errorf("shape mismatch:\nexpected: %+v\ngot:      %+v", tc.shape, got)
			}
		})
	}
}

// TestTierSizeMonotonic tests that serialized size strictly grows with tier
func TestTierSizeMonotonic(t *testing.T) {
	var prev int
	for _, tier := range Tiers() {
		data, err := json.Marshal(GenerateDefault(tier))
		if err != nil {
			t.Fatalf("failed to marshal %s dataset: %v", tier, err)
		}
		if len(data) <= prev {
			t.Errorf("tier %s is not larger than the previous tier: %d <= %d", tier, len(data), prev)
		}
		prev = len(data)
	}
}

// TestObjectCount tests the top-level entity count including nil datasets
func TestObjectCount(t *testing.T) {
	if got := GenerateDefault(TierMedium).ObjectCount(); got != 10 {
		t.Errorf("expected 10 objects for MEDIUM, got %d", got)
	}

	var nilDataset *Dataset
	if got := nilDataset.ObjectCount(); got != 0 {
		t.Errorf("expected 0 objects for nil dataset, got %d", got)
	}
}

// TestParseTier tests tier name parsing including case folding and errors
func TestParseTier(t *testing.T) {
	testCases := []struct {
		input     string
		expected  ComplexityTier
		expectErr bool
	}{
		{"SMALL", TierSmall, false},
		{"small", TierSmall, false},
		{" medium ", TierMedium, false},
		{"Large", TierLarge, false},
		{"HUGE", TierHuge, false},
		{"", "", true},
		{"gigantic", "", true},
	}

	for _, tc := range testCases {
		tier, err := ParseTier(tc.input)
		if tc.expectErr {
			if err == nil {
				t.Errorf("expected error for %q but got none", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("unexpected error for %q: %v", tc.input, err)
			continue
		}
		if tier != tc.expected {
			t.Errorf("ParseTier(%q): expected %s, got %s", tc.input, tc.expected, tier)
		}
	}
}

// TestGenerateUnknownTierPanics tests that an unknown tier panics
func TestGenerateUnknownTierPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown tier")
		}
	}()
	Generate(ComplexityTier("GIGANTIC"), DefaultSeed)
}

// TestDecimalFormats tests the fixed-precision decimal string helpers
func TestDecimalFormats(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{12345, "123.45"},
		{-999, "-9.99"},
	}
	for _, tc := range testCases {
		if got := decimal2(tc.cents); got != tc.expected {
			t.Errorf("decimal2(%d): expected %s, got %s", tc.cents, tc.expected, got)
		}
	}

	if got := decimal6(52123456); got != "52.123456" {
		t.Errorf("decimal6: expected 52.123456, got %s", got)
	}
	if got := decimal6(-1); got != "-0.000001" {
		t.Errorf("decimal6: expected -0.000001, got %s", got)
	}
}

// TestMonetaryValuesAreStrings tests that generated monetary fields carry the
// fixed two-decimal format
func TestMonetaryValuesAreStrings(t *testing.T) {
	ds := GenerateDefault(TierSmall)
	order := ds.Users[0].Orders[0]

	for name, v := range map[string]string{
		"TotalAmount": order.TotalAmount,
		"Subtotal":    order.Subtotal,
		"TaxAmount":   order.TaxAmount,
		"UnitPrice":   order.Items[0].UnitPrice,
	} {
		if len(v) < 4 || v[len(v)-3] != '.' {
			t.Errorf("%s is not a two-decimal string: %q", name, v)
		}
	}
}
