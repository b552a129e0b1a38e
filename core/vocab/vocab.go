// Package vocab defines the ordered categorical vocabularies used to
// encode flight attributes. A category's numeric code is its zero-based
// position in the vocabulary; the ordering was fixed at training time
// and travels with the encoder artifact.
package vocab

import "fmt"

// Expected vocabulary sizes, part of the trained model's contract.
const (
	NumAirlines = 6
	NumCities   = 6
	NumClasses  = 2
)

// UnknownCategoryError reports a value outside its fixed vocabulary.
// It indicates a contract violation between the input surface and the
// encoders, never a user mistake: the form only offers vocabulary
// values.
type UnknownCategoryError struct {
	Field string
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s category %q", e.Field, e.Value)
}

// Vocabulary is an ordered set of legal category names for one field.
type Vocabulary struct {
	Field string
	Names []string
}

// Code returns the zero-based position of name in the vocabulary.
func (v Vocabulary) Code(name string) (int, error) {
	for i, n := range v.Names {
		if n == name {
			return i, nil
		}
	}
	return 0, &UnknownCategoryError{Field: v.Field, Value: name}
}

// Name returns the category name for the given code.
func (v Vocabulary) Name(code int) (string, error) {
	if code < 0 || code >= len(v.Names) {
		return "", fmt.Errorf("%s code %d out of range [0,%d)", v.Field, code, len(v.Names))
	}
	return v.Names[code], nil
}

// EncoderSet bundles the three vocabularies loaded from the encoder
// artifact. Source and destination cities share the city vocabulary.
type EncoderSet struct {
	Version string
	Airline Vocabulary
	City    Vocabulary
	Class   Vocabulary
}

// Validate checks the cardinalities agreed with the trained model.
func (s *EncoderSet) Validate() error {
	checks := []struct {
		v    Vocabulary
		want int
	}{
		{s.Airline, NumAirlines},
		{s.City, NumCities},
		{s.Class, NumClasses},
	}
	for _, c := range checks {
		if len(c.v.Names) != c.want {
			return fmt.Errorf("%s vocabulary has %d entries, want %d", c.v.Field, len(c.v.Names), c.want)
		}
		seen := make(map[string]struct{}, len(c.v.Names))
		for _, n := range c.v.Names {
			if n == "" {
				return fmt.Errorf("%s vocabulary contains an empty name", c.v.Field)
			}
			if _, dup := seen[n]; dup {
				return fmt.Errorf("%s vocabulary contains duplicate %q", c.v.Field, n)
			}
			seen[n] = struct{}{}
		}
	}
	return nil
}

// Default returns the vocabularies the current model generation was
// trained with. Production loads them from encoders.json; tests and the
// artifact exporter share this single definition.
func Default() *EncoderSet {
	return &EncoderSet{
		Version: "v1",
		Airline: Vocabulary{Field: "airline", Names: []string{
			"Air India", "AirAsia", "GoAir", "IndiGo", "SpiceJet", "Vistara",
		}},
		City: Vocabulary{Field: "city", Names: []string{
			"Bangalore", "Chennai", "Delhi", "Hyderabad", "Kolkata", "Mumbai",
		}},
		Class: Vocabulary{Field: "class", Names: []string{
			"Economy", "Business",
		}},
	}
}
