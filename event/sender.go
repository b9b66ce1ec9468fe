package event

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"statusagent/models"
)

// Sender posts events and status reports to the orchestrator over HTTP.
type Sender struct {
	eventURL  string
	reportURL string
	apiKey    string
	client    *http.Client
}

func NewSender(eventURL, reportURL, apiKey string) *Sender {
	return &Sender{
		eventURL:  eventURL,
		reportURL: reportURL,
		apiKey:    apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// envelope is the wire shape of a fired event.
type envelope struct {
	Tag  string `json:"tag"`
	Data any    `json:"data"`
}

// Fire posts a tagged event to the event endpoint.
func (s *Sender) Fire(ctx context.Context, data any, tag string) error {
	return s.post(ctx, s.eventURL, envelope{Tag: tag, Data: data})
}

// PushReport posts a status report to the report endpoint. A sender with
// no report endpoint silently skips the push.
func (s *Sender) PushReport(ctx context.Context, report *models.StatusReport) error {
	if s.reportURL == "" {
		return nil
	}
	if err := s.post(ctx, s.reportURL, report); err != nil {
		return err
	}
	log.Debugf("Report pushed for host %s", report.Hostname)
	return nil
}

func (s *Sender) post(ctx context.Context, url string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		var apiResp APIResponse
		if err := json.Unmarshal(body, &apiResp); err == nil && apiResp.Error != "" {
			return fmt.Errorf("API error (%d): %s [%s]", resp.StatusCode, apiResp.Error, apiResp.Code)
		}
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}
	return nil
}
