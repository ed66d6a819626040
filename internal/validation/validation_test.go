package validation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "Pen", v)
	if !v.Empty() {
		t.Fatalf("expected no violations, got %v", v)
	}
	Required("name", "   ", v)
	if v["name"] != "required" {
		t.Fatalf("expected required violation, got %v", v)
	}
}

func TestDecimalValidators(t *testing.T) {
	v := Violations{}
	NonNegativeDecimal("price", decimal.Zero, v)
	PositiveDecimal("qty", decimal.NewFromInt(1), v)
	if !v.Empty() {
		t.Fatalf("expected no violations, got %v", v)
	}

	NonNegativeDecimal("price", decimal.NewFromInt(-1), v)
	if v["price"] != "must_not_be_negative" {
		t.Fatalf("expected negative violation, got %v", v)
	}
	PositiveDecimal("qty", decimal.Zero, v)
	if v["qty"] != "must_be_positive" {
		t.Fatalf("expected positive violation, got %v", v)
	}
}

func TestParseDecimal(t *testing.T) {
	v := Violations{}
	d := ParseDecimal("price", " 2.50 ", v)
	if !v.Empty() || !d.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("expected 2.5, got %s (violations %v)", d, v)
	}
	ParseDecimal("price", "abc", v)
	if v["price"] != "must_be_a_number" {
		t.Fatalf("expected number violation, got %v", v)
	}
}
