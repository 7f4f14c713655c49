package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

func TestWebhookNotifier_SendAnomaly(t *testing.T) {
	t.Parallel()

	var received webhookPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret-token", r.Header.Get("X-Auth-Token"))

		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := testAnomaly(domain.SeverityWarning)
	n := NewWebhookNotifier(srv.URL, map[string]string{"X-Auth-Token": "secret-token"})
	require.NoError(t, n.SendAnomaly(context.Background(), &a))

	assert.Equal(t, "anomaly.detected", received.Event)
	require.NotNil(t, received.Anomaly)
	assert.Equal(t, a.ID, received.Anomaly.ID)
	assert.Equal(t, a.Type, received.Anomaly.Type)
}

func TestWebhookNotifier_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := testAnomaly(domain.SeverityCritical)
	n := NewWebhookNotifier(srv.URL, nil)
	err := n.SendAnomaly(context.Background(), &a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook returned 502")
}

func TestWebhookNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	n := NewWebhookNotifier("http://127.0.0.1:1", nil) // nothing listening
	a := testAnomaly(domain.SeverityInfo)
	err := n.SendAnomaly(context.Background(), &a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending webhook")
}

func TestWithWebhookHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	n := NewWebhookNotifier("https://example.com", nil, WithWebhookHTTPClient(custom))
	assert.Same(t, custom, n.client)
}
