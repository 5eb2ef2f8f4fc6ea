package actions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Revalidator receives the public routes whose cached pages must be
// recomputed after a mutation. Delivery is fire-and-forget.
type Revalidator interface {
	Revalidate(paths ...string)
}

// NopRevalidator drops the signal; used when no webhook is configured.
type NopRevalidator struct{}

func (NopRevalidator) Revalidate(...string) {}

// WebhookRevalidator POSTs changed paths to the frontend's on-demand
// revalidation endpoint.
type WebhookRevalidator struct {
	url    string
	secret string
	client *http.Client
}

func NewRevalidator(url, secret string) Revalidator {
	if url == "" {
		return NopRevalidator{}
	}
	return &WebhookRevalidator{
		url:    url,
		secret: secret,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *WebhookRevalidator) Revalidate(paths ...string) {
	go bestEffort("revalidate routes", func() error {
		body, err := json.Marshal(map[string]any{"paths": paths})
		if err != nil {
			return err
		}
		req, err := http.NewRequest(http.MethodPost, w.url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if w.secret != "" {
			req.Header.Set("X-Revalidate-Secret", w.secret)
		}
		resp, err := w.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			return fmt.Errorf("revalidate webhook returned %d", resp.StatusCode)
		}
		return nil
	})
}
