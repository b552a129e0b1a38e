// Package artifact loads the trained objects the service depends on:
// the regression model, the fitted scaler and the categorical encoder
// set. All three are JSON documents exported at training time. They are
// read exactly once at startup and held read-only afterwards; a missing
// or inconsistent file is the only fatal condition in the system.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flightfare/farecast/core/model"
	"github.com/flightfare/farecast/core/predict"
	"github.com/flightfare/farecast/core/vocab"
)

// File names within the artifact directory.
const (
	ModelFile    = "model.json"
	ScalerFile   = "scaler.json"
	EncodersFile = "encoders.json"
)

// Set bundles the three loaded artifacts.
type Set struct {
	Model    *predict.LinearModel
	Scaler   *predict.StandardScaler
	Encoders *vocab.EncoderSet
}

type modelDoc struct {
	Type      string    `json:"type"`
	Version   string    `json:"version"`
	Features  []string  `json:"features"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

type scalerDoc struct {
	Type  string    `json:"type"`
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

type encodersDoc struct {
	Version  string   `json:"version"`
	Airlines []string `json:"airlines"`
	Cities   []string `json:"cities"`
	Classes  []string `json:"classes"`
}

// Load reads and validates the three artifacts from dir. Any missing
// file, decode failure or schema mismatch is returned as an error
// naming the offending file so startup can halt with a clear
// diagnostic.
func Load(dir string) (*Set, error) {
	var md modelDoc
	if err := readJSON(filepath.Join(dir, ModelFile), &md); err != nil {
		return nil, err
	}
	var sd scalerDoc
	if err := readJSON(filepath.Join(dir, ScalerFile), &sd); err != nil {
		return nil, err
	}
	var ed encodersDoc
	if err := readJSON(filepath.Join(dir, EncodersFile), &ed); err != nil {
		return nil, err
	}

	if md.Type != "linear_regression" {
		return nil, fmt.Errorf("%s: unsupported model type %q", ModelFile, md.Type)
	}
	if err := checkManifest(md.Features); err != nil {
		return nil, fmt.Errorf("%s: %w", ModelFile, err)
	}
	m := &predict.LinearModel{Weights: md.Weights, Intercept: md.Intercept}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ModelFile, err)
	}

	if sd.Type != "standard" {
		return nil, fmt.Errorf("%s: unsupported scaler type %q", ScalerFile, sd.Type)
	}
	s := &predict.StandardScaler{Mean: sd.Mean, Scale: sd.Scale}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ScalerFile, err)
	}

	enc := &vocab.EncoderSet{
		Version: ed.Version,
		Airline: vocab.Vocabulary{Field: "airline", Names: ed.Airlines},
		City:    vocab.Vocabulary{Field: "city", Names: ed.Cities},
		Class:   vocab.Vocabulary{Field: "class", Names: ed.Classes},
	}
	if err := enc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", EncodersFile, err)
	}

	return &Set{Model: m, Scaler: s, Encoders: enc}, nil
}

// checkManifest compares the feature list carried by the model artifact
// against the vector layout compiled into this binary. A mismatch means
// the artifacts were trained for a different feature order and any
// prediction would be silently wrong.
func checkManifest(features []string) error {
	if len(features) != model.NumFeatures {
		return fmt.Errorf("feature manifest has %d entries, want %d", len(features), model.NumFeatures)
	}
	for i, name := range features {
		if name != model.FeatureNames[i] {
			return fmt.Errorf("feature manifest[%d] is %q, binary expects %q", i, name, model.FeatureNames[i])
		}
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read artifact %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode artifact %s: %w", filepath.Base(path), err)
	}
	return nil
}
