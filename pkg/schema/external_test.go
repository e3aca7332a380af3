package schema

import "testing"

func TestFloatFromExternal(t *testing.T) {
	p := NewFloat(0).Min(0).Max(10)

	tests := []struct {
		repr    any
		want    float64
		wantErr bool
	}{
		{"5", 5, false},
		{"2.5", 2.5, false},
		{"-3", -3, false}, // conversion succeeds even out of bounds
		{7.25, 7.25, false},
		{3, 3, false},
		{"abc", 0, true},
		{true, 0, true},
		{nil, 0, true},
	}

	for _, tt := range tests {
		got, err := p.FromExternal(tt.repr)
		if (err != nil) != tt.wantErr {
			t.Errorf("FromExternal(%v) error = %v, wantErr %v", tt.repr, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("FromExternal(%v) = %v, want %v", tt.repr, got, tt.want)
		}
	}
}

func TestFloatFromExternal_NeverValidates(t *testing.T) {
	p := NewFloat(0).Min(0).Max(10)

	v, err := p.FromExternal("-1")
	if err != nil {
		t.Fatalf("FromExternal(-1) error = %v", err)
	}
	if p.Validate(v) {
		t.Error("Validate(-1) should be false; conversion must not suppress it")
	}
}

func TestIntFromExternal(t *testing.T) {
	p := NewInt(0)

	tests := []struct {
		repr    any
		want    int
		wantErr bool
	}{
		{"4", 4, false},
		{4, 4, false},
		{float64(4), 4, false},
		{float64(4.5), 0, true},
		{"4.5", 0, true},
		{"x", 0, true},
		{nil, 0, true},
	}

	for _, tt := range tests {
		got, err := p.FromExternal(tt.repr)
		if (err != nil) != tt.wantErr {
			t.Errorf("FromExternal(%v) error = %v, wantErr %v", tt.repr, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("FromExternal(%v) = %v, want %v", tt.repr, got, tt.want)
		}
	}
}

func TestChoicesFromExternal(t *testing.T) {
	p := NewChoices("add", "add", "sub")

	v, err := p.FromExternal("mul")
	if err != nil {
		t.Fatalf("FromExternal(mul) error = %v", err)
	}
	if v != "mul" {
		t.Errorf("FromExternal(mul) = %v, want %q", v, "mul")
	}
	// Membership is validation's job, not conversion's.
	if p.Validate(v) {
		t.Error("Validate(mul) should be false")
	}

	if _, err := p.FromExternal(42); err == nil {
		t.Error("FromExternal(42) should fail")
	}
}

func TestToExternal(t *testing.T) {
	if got := NewFloat(0).ToExternal(2.5); got != 2.5 {
		t.Errorf("ToExternal(2.5) = %v", got)
	}
	if got := NewInt(0).ToExternal(4); got != 4 {
		t.Errorf("ToExternal(4) = %v", got)
	}
	if got := NewChoices("a", "a").ToExternal("a"); got != "a" {
		t.Errorf("ToExternal(a) = %v", got)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Key: "value", Reason: "rejected by float[0..10]", Value: -1.0}
	want := `property "value": rejected by float[0..10] (got -1)`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
