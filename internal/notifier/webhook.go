package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"TrendSentinel/internal/model"
)

// WebhookNotifier POSTs dispatched signals to a configured HTTP
// endpoint (e.g. a TradingView-style alert webhook).
type WebhookNotifier struct {
	URL    string
	Client *http.Client
}

// NewWebhookNotifier creates a notifier with optional proxy support.
func NewWebhookNotifier(webhookURL, proxyURL string) *WebhookNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &WebhookNotifier{
		URL: webhookURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (w *WebhookNotifier) Name() string { return "webhook" }

// webhookPayload is the JSON body carried to the endpoint.
type webhookPayload struct {
	Ticker     string  `json:"ticker"`
	Direction  string  `json:"direction"`
	Confidence float64 `json:"confidence"`
	Time       string  `json:"time"`
}

// Notify delivers the signal.
func (w *WebhookNotifier) Notify(ctx context.Context, sig *model.Signal) error {
	payload := webhookPayload{
		Ticker:     sig.Ticker,
		Direction:  string(sig.Direction),
		Confidence: sig.Confidence,
		Time:       sig.Time.UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", w.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
