package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUID(t *testing.T) {
	valid := []string{"04A3B2C1", "04a3b2c1", "A1B2C3D4E5F6A7", "00112233445566778899"}
	invalid := []string{"", "04A3B2", "ZZZZZZZZ", "04 A3 B2 C1", "0011223344556677889900"}
	for _, uid := range valid {
		if !IsValidUID(uid) {
			t.Errorf("IsValidUID(%q) = false, want true", uid)
		}
	}
	for _, uid := range invalid {
		if IsValidUID(uid) {
			t.Errorf("IsValidUID(%q) = true, want false", uid)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-03-01", "2000-12-31"}
	invalid := []string{"2024-3-1", "01-03-2024", "2024-13-01", "yesterday", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2024-03", "1999-12"}
	invalid := []string{"2024-3", "2024-13", "2024-03-01", "", "march"}
	for _, s := range valid {
		if !IsValidMonth(s) {
			t.Errorf("IsValidMonth(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidMonth(s) {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	modes := []string{"monthly", "weekly"}
	if !IsInSlice("monthly", modes) {
		t.Error(`IsInSlice("monthly") = false, want true`)
	}
	if IsInSlice("daily", modes) {
		t.Error(`IsInSlice("daily") = true, want false`)
	}
}
