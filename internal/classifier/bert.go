// Package classifier adapts the model runtime into a stable
// classification interface: text in, tiered 2-class verdict out.
package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/disposable-platform/phishguard/internal/mlruntime"
)

// Class ordering of the pre-trained model. Fixed contract, not inferred.
const (
	legitimateClass = 0
	phishingClass   = 1
)

// BERT scores text through the runtime-hosted BERT model. It is loaded
// once at startup and read-only afterwards, so a single instance is
// safely shared by concurrent requests.
type BERT struct {
	runtime *mlruntime.Client
	info    ModelInfo
	ready   bool
}

// NewBERT creates an unloaded classifier. Call Load before serving.
func NewBERT(runtime *mlruntime.Client) *BERT {
	return &BERT{runtime: runtime}
}

// Load verifies the runtime has the model in memory and latches the
// model identifier and device. A failure here is fatal to startup;
// there is no partial-service mode and no reload path.
func (b *BERT) Load(ctx context.Context) error {
	slog.Info("loading phishing detection model")

	health, err := b.runtime.Health(ctx)
	if err != nil {
		return fmt.Errorf("model runtime unreachable: %w", err)
	}
	if !health.ModelLoaded {
		return fmt.Errorf("model runtime has no model loaded (status %q)", health.Status)
	}

	b.info = ModelInfo{Name: health.Model, Device: health.Device}
	b.ready = true
	slog.Info("model loaded", "model", b.info.Name, "device", b.info.Device)
	return nil
}

// Ready reports whether Load succeeded.
func (b *BERT) Ready() bool { return b.ready }

// Model describes the loaded model.
func (b *BERT) Model() ModelInfo { return b.info }

// Classify sends text to the runtime, applies softmax to the two raw
// class scores, and derives the verdict. The runtime truncates input
// to 512 tokens before the forward pass. Failures are not retried.
func (b *BERT) Classify(ctx context.Context, text string) (*Result, error) {
	if !b.ready {
		return nil, ErrNotReady
	}

	pred, err := b.runtime.Predict(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}

	probs := softmax2(pred.Logits[0], pred.Logits[1])
	isPhishing := probs[phishingClass] > probs[legitimateClass]

	confidence := probs[legitimateClass]
	if isPhishing {
		confidence = probs[phishingClass]
	}

	return &Result{
		IsPhishing:          isPhishing,
		Confidence:          confidence,
		PhishingProbability: probs[phishingClass],
	}, nil
}

// softmax2 normalizes two logits into a probability distribution.
// The max is subtracted first to keep the exponentials bounded.
func softmax2(l0, l1 float64) [2]float64 {
	m := math.Max(l0, l1)
	e0 := math.Exp(l0 - m)
	e1 := math.Exp(l1 - m)
	sum := e0 + e1
	return [2]float64{e0 / sum, e1 / sum}
}
