// Package analyzer owns the request-to-verdict pipeline: normalize the
// heterogeneous request fields into one scorable string, classify it,
// and phrase the verdict.
package analyzer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/disposable-platform/phishguard/apimodels"
	"github.com/disposable-platform/phishguard/internal/classifier"
)

// ErrMissingURL rejects requests without the required url field before
// any model call is made.
var ErrMissingURL = errors.New("url is required")

// Analyzer orchestrates one analysis per request. Stateless apart from
// the shared read-only classifier, so a single instance serves all
// requests concurrently.
type Analyzer struct {
	classifier classifier.Classifier
}

func New(c classifier.Classifier) *Analyzer {
	return &Analyzer{classifier: c}
}

// Analyze runs the full pipeline for one request. Failures are logged
// with the originating URL and returned typed so the HTTP layer can map
// them; a failing request never affects the process or other requests.
func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.AnalysisResponse, error) {
	if req.URL == "" {
		return nil, ErrMissingURL
	}
	if !a.classifier.Ready() {
		slog.Warn("analysis rejected, model not loaded", "url", req.URL)
		return nil, classifier.ErrNotReady
	}

	slog.Info("starting analysis", "url", req.URL)

	text := Normalize(req.URL, req.Title, req.Text)

	result, err := a.classifier.Classify(ctx, text)
	if err != nil {
		slog.Error("analysis failed", "url", req.URL, "error", err)
		return nil, err
	}

	model := a.classifier.Model()
	resp := &apimodels.AnalysisResponse{
		IsPhishing: result.IsPhishing,
		Confidence: result.Confidence,
		RiskScore:  result.PhishingProbability,
		Message:    Verdict(result.IsPhishing, result.Confidence),
		Details: apimodels.AnalysisDetails{
			ModelUsed:    model.Name,
			AnalysisText: text,
			Device:       model.Device,
		},
	}

	slog.Info("analysis completed",
		"url", req.URL,
		"is_phishing", resp.IsPhishing,
		"confidence", resp.Confidence,
	)
	return resp, nil
}

// Health reports the model lifecycle view exposed on GET /health.
func (a *Analyzer) Health() apimodels.HealthResponse {
	device := a.classifier.Model().Device
	if device == "" {
		device = "unknown"
	}
	return apimodels.HealthResponse{
		Status:      "healthy",
		ModelLoaded: a.classifier.Ready(),
		Device:      device,
	}
}
