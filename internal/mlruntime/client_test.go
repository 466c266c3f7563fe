package mlruntime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Predict(t *testing.T) {
	t.Run("successful prediction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/predict", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req PredictRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "URL: http://example.com/", req.Text)
			assert.Equal(t, MaxTokens, req.MaxTokens)

			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(PredictResponse{Logits: []float64{2.1, -1.3}})
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)
		result, err := client.Predict(context.Background(), "URL: http://example.com/")

		require.NoError(t, err)
		assert.Equal(t, []float64{2.1, -1.3}, result.Logits)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte("tokenizer error"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)
		_, err := client.Predict(context.Background(), "text")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("wrong logit count", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			err := json.NewEncoder(w).Encode(PredictResponse{Logits: []float64{0.5}})
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)
		_, err := client.Predict(context.Background(), "text")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "want 2")
	})

	t.Run("connection error", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", time.Second)
		_, err := client.Predict(context.Background(), "text")

		assert.Error(t, err)
	})
}

func TestClient_Health(t *testing.T) {
	t.Run("model loaded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			assert.Equal(t, "GET", r.Method)

			err := json.NewEncoder(w).Encode(HealthResponse{
				Status:      "healthy",
				ModelLoaded: true,
				Model:       "ealvaradob/bert-finetuned-phishing",
				Device:      "cuda",
			})
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)
		result, err := client.Health(context.Background())

		require.NoError(t, err)
		assert.True(t, result.ModelLoaded)
		assert.Equal(t, "ealvaradob/bert-finetuned-phishing", result.Model)
		assert.Equal(t, "cuda", result.Device)
	})

	t.Run("runtime unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)
		_, err := client.Health(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}
