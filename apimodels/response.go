package apimodels

// AnalysisResponse is the verdict returned by POST /analyze.
type AnalysisResponse struct {
	// IsPhishing reports the predicted class.
	IsPhishing bool `json:"is_phishing"`

	// Confidence is the probability of the predicted class, in [0,1].
	Confidence float64 `json:"confidence"`

	// RiskScore is the probability mass on the phishing class regardless
	// of which class was predicted, in [0,1].
	RiskScore float64 `json:"risk_score"`

	// Message is the tiered, human-readable verdict.
	Message string `json:"message"`

	// Details carries auxiliary metadata for observability.
	Details AnalysisDetails `json:"details"`
}

// AnalysisDetails describes how a verdict was produced.
type AnalysisDetails struct {
	// ModelUsed is the identifier of the model that scored the request.
	ModelUsed string `json:"model_used"`

	// AnalysisText is the normalized text actually sent to the model.
	AnalysisText string `json:"analysis_text"`

	// Device is the compute device the model ran on.
	Device string `json:"device"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Device      string `json:"device"`
}

// ErrorResponse is the body of any non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
