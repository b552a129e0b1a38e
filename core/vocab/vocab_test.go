package vocab

import (
	"errors"
	"testing"
)

func TestCodeNameRoundTrip(t *testing.T) {
	enc := Default()
	vocabs := []Vocabulary{enc.Airline, enc.City, enc.Class}
	for _, v := range vocabs {
		for i, name := range v.Names {
			code, err := v.Code(name)
			if err != nil {
				t.Fatalf("%s: encode %q: %v", v.Field, name, err)
			}
			if code != i {
				t.Fatalf("%s: %q encoded to %d, want %d", v.Field, name, code, i)
			}
			back, err := v.Name(code)
			if err != nil {
				t.Fatalf("%s: decode %d: %v", v.Field, code, err)
			}
			if back != name {
				t.Fatalf("%s: round trip gave %q, want %q", v.Field, back, name)
			}
		}
	}
}

func TestCodeUnknownCategory(t *testing.T) {
	enc := Default()
	_, err := enc.Airline.Code("Emirates")
	if err == nil {
		t.Fatalf("expected error for unknown airline")
	}
	var uc *UnknownCategoryError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnknownCategoryError, got %T", err)
	}
	if uc.Field != "airline" || uc.Value != "Emirates" {
		t.Fatalf("unexpected error detail %#v", uc)
	}
}

func TestNameOutOfRange(t *testing.T) {
	enc := Default()
	if _, err := enc.Class.Name(2); err == nil {
		t.Fatalf("expected error for out-of-range code")
	}
	if _, err := enc.Class.Name(-1); err == nil {
		t.Fatalf("expected error for negative code")
	}
}

func TestEncoderSetValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default set should validate: %v", err)
	}

	short := Default()
	short.City.Names = short.City.Names[:5]
	if err := short.Validate(); err == nil {
		t.Fatalf("expected error for missing city")
	}

	dup := Default()
	dup.Airline.Names = []string{"IndiGo", "IndiGo", "GoAir", "SpiceJet", "Vistara", "AirAsia"}
	if err := dup.Validate(); err == nil {
		t.Fatalf("expected error for duplicate airline")
	}
}
