package event

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusagent/models"
)

func TestSenderFire(t *testing.T) {
	var got envelope
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("X-API-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	s := NewSender(srv.URL, "", "secret")
	err := s.Fire(context.Background(), models.MasterEvent{Master: "10.1.1.1"}, "__master_connected")
	require.NoError(t, err)

	assert.Equal(t, "secret", apiKey)
	assert.Equal(t, "__master_connected", got.Tag)
	data, ok := got.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "10.1.1.1", data["master"])
}

func TestSenderFireAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":false,"error":"bad key","code":"AUTH"}`))
	}))
	defer srv.Close()

	s := NewSender(srv.URL, "", "wrong")
	err := s.Fire(context.Background(), models.MasterEvent{Master: "m"}, "__master_disconnected")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
	assert.Contains(t, err.Error(), "AUTH")
}

func TestSenderPushReport(t *testing.T) {
	var got models.StatusReport
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	report := &models.StatusReport{
		Timestamp: time.Now(),
		Hostname:  "minion-1",
		ProcCount: 42,
	}

	s := NewSender("", srv.URL, "")
	require.NoError(t, s.PushReport(context.Background(), report))
	assert.Equal(t, "minion-1", got.Hostname)
	assert.Equal(t, 42, got.ProcCount)
}

func TestSenderPushReportNoEndpoint(t *testing.T) {
	s := NewSender("", "", "")
	require.NoError(t, s.PushReport(context.Background(), &models.StatusReport{}))
}
