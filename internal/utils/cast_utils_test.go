// Package utils
package utils

import "testing"

func TestStrToInt(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue int
		expected     int
	}{
		{"1", 0, 1},
		{"4654132", 1, 4654132},
		{"ABCD", 0, 0},
		{"ABCD", 100, 100},
		{"", 7, 7},
	}
	for _, test := range tests {
		result := StrToInt(test.input, test.defaultValue)
		if result != test.expected {
			t.Errorf("StrToInt(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
		}
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue int
		expected     int
	}{
		{"120", 0, 120},
		{"120abc", 0, 120},
		{"7 seats", 0, 7},
		{"abc", 5, 5},
		{"", 5, 5},
		{" 12", 5, 5},
	}
	for _, test := range tests {
		result := LeadingInt(test.input, test.defaultValue)
		if result != test.expected {
			t.Errorf("LeadingInt(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
		}
	}
}
