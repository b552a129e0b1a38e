package predict

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/flightfare/farecast/core/model"
)

// Scaler transforms a raw feature vector into the numeric space the
// model was fitted in.
type Scaler interface {
	Transform(model.FeatureVector) (model.FeatureVector, error)
}

// StandardScaler applies the fitted standardization (x - mean) / scale
// per feature. Mean and Scale come from the scaler artifact.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

// Validate checks the fitted parameters against the feature layout.
func (s *StandardScaler) Validate() error {
	if len(s.Mean) != model.NumFeatures {
		return fmt.Errorf("scaler mean has %d entries, want %d", len(s.Mean), model.NumFeatures)
	}
	if len(s.Scale) != model.NumFeatures {
		return fmt.Errorf("scaler scale has %d entries, want %d", len(s.Scale), model.NumFeatures)
	}
	for i, v := range s.Scale {
		if v == 0 {
			return fmt.Errorf("scaler scale[%d] (%s) is zero", i, model.FeatureNames[i])
		}
	}
	return nil
}

// Transform standardizes the vector elementwise.
func (s *StandardScaler) Transform(fv model.FeatureVector) (model.FeatureVector, error) {
	if err := s.Validate(); err != nil {
		return model.FeatureVector{}, err
	}
	out := fv
	floats.Sub(out[:], s.Mean)
	floats.Div(out[:], s.Scale)
	return out, nil
}
