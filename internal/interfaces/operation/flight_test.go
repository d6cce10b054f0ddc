// Package operation
package operation

import "testing"

func TestSeatCode(t *testing.T) {
	tests := []struct {
		sequence int
		expected string
	}{
		{0, "A1"},
		{1, "A2"},
		{5, "A6"},
		{6, "B1"},
		{7, "B2"},
		{35, "F6"},
		{36, "G1"},
	}
	for _, test := range tests {
		if result := SeatCode(test.sequence); result != test.expected {
			t.Errorf("SeatCode(%d) = %q; expected %q", test.sequence, result, test.expected)
		}
	}
}

func TestSeatCodesDistinctAndOrdered(t *testing.T) {
	seen := make(map[string]bool)
	previous := ""
	for s := 0; s < 60; s++ {
		code := SeatCode(s)
		if seen[code] {
			t.Fatalf("SeatCode(%d) = %q issued twice", s, code)
		}
		seen[code] = true
		if code <= previous && len(code) == len(previous) {
			t.Fatalf("SeatCode(%d) = %q not after %q", s, code, previous)
		}
		previous = code
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		typeTag  string
		stopover string
		expected FlightType
	}{
		{"Domestic", "-", FlightTypeDomestic},
		{"International", "-", FlightTypeInternational},
		{"International", "", FlightTypeInternational},
		// A stopover reclassifies the flight whatever the loader tag says.
		{"International", "DXB", FlightTypeConnecting},
		{"Domestic", "DXB", FlightTypeConnecting},
		// Anything but "Domestic" is treated as an international base.
		{"Cargo", "-", FlightTypeInternational},
	}
	for _, test := range tests {
		flight := &Flight{TypeTag: test.typeTag, Stopover: test.stopover}
		if result := TypeOf(flight); result != test.expected {
			t.Errorf("TypeOf(tag=%q, stopover=%q) = %v; expected %v",
				test.typeTag, test.stopover, result, test.expected)
		}
	}
}
