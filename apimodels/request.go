package apimodels

// AnalysisRequest is the body of POST /analyze.
type AnalysisRequest struct {
	// URL is the link under suspicion. Required.
	URL string `json:"url"`

	// Title is the page title, when the caller has fetched the page.
	Title string `json:"title,omitempty"`

	// Text is the page body or message content, when available.
	Text string `json:"text,omitempty"`
}
