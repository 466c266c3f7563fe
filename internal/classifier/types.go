package classifier

import (
	"context"
	"errors"
)

var (
	// ErrNotReady is returned when classification is attempted before
	// the model has been loaded.
	ErrNotReady = errors.New("model not loaded")

	// ErrInference wraps any tokenization or forward-pass failure.
	ErrInference = errors.New("inference failed")
)

// Result is the outcome of scoring one text.
type Result struct {
	// IsPhishing is the argmax class.
	IsPhishing bool

	// Confidence is the probability of the predicted class, in [0,1].
	Confidence float64

	// PhishingProbability is the probability mass on the phishing class
	// specifically, in [0,1]. Equals Confidence when IsPhishing, and
	// 1-Confidence otherwise.
	PhishingProbability float64
}

// ModelInfo identifies the loaded model and its compute device.
type ModelInfo struct {
	Name   string
	Device string
}

// Classifier scores text against the phishing model.
type Classifier interface {
	// Classify returns the verdict for a single text. It fails with
	// ErrNotReady before a successful Load, and with an ErrInference
	// wrapper on any runtime failure.
	Classify(ctx context.Context, text string) (*Result, error)

	// Ready reports whether the model is loaded and serving.
	Ready() bool

	// Model describes the loaded model. Zero value until Ready.
	Model() ModelInfo
}
