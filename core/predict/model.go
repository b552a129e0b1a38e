package predict

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/flightfare/farecast/core/model"
)

// Model produces one scalar fare estimate from a scaled feature vector.
type Model interface {
	Predict(model.FeatureVector) (float64, error)
}

// LinearModel is the trained regression: fare = w·x + b. Weights and
// intercept come from the model artifact and follow the fixed feature
// order.
type LinearModel struct {
	Weights   []float64
	Intercept float64
}

// Validate checks the weight count against the feature layout.
func (m *LinearModel) Validate() error {
	if len(m.Weights) != model.NumFeatures {
		return fmt.Errorf("model has %d weights, want %d", len(m.Weights), model.NumFeatures)
	}
	return nil
}

// Predict evaluates the regression on the scaled vector.
func (m *LinearModel) Predict(fv model.FeatureVector) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	w := mat.NewVecDense(model.NumFeatures, m.Weights)
	x := mat.NewVecDense(model.NumFeatures, fv[:])
	return mat.Dot(w, x) + m.Intercept, nil
}
