package geodex

import "testing"

func TestParseUnitSystem(t *testing.T) {
	tests := []struct {
		indicator string
		want      UnitSystem
	}{
		{"", Miles},
		{"K", Kilometers},
		{"k", Kilometers},
		{"km", Kilometers},
		{"kilometers", Kilometers},
		{"Kilometers", Kilometers},
		{"kms", Kilometers},
		{"M", Miles},
		{"miles", Miles},
		{"mi", Miles},
		{"nautical", Miles},
	}
	for _, tt := range tests {
		if got := ParseUnitSystem(tt.indicator); got != tt.want {
			t.Errorf("ParseUnitSystem(%q) = %q, want %q", tt.indicator, got, tt.want)
		}
	}
}

func TestUnitSystem_IsValid(t *testing.T) {
	if !Miles.IsValid() || !Kilometers.IsValid() {
		t.Fatal("built-in unit systems must be valid")
	}
	if UnitSystem("furlongs").IsValid() {
		t.Fatal("unknown unit system reported valid")
	}
	if UnitSystem("").IsValid() {
		t.Fatal("empty unit system reported valid")
	}
}

func TestUnitSystem_EarthRadius(t *testing.T) {
	if got := Miles.EarthRadius(); got != EarthRadiusMiles {
		t.Fatalf("miles radius %v, want %v", got, EarthRadiusMiles)
	}
	if got := Kilometers.EarthRadius(); got != EarthRadiusKilometers {
		t.Fatalf("km radius %v, want %v", got, EarthRadiusKilometers)
	}
}
