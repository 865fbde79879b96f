package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

// SiblingNotifier tells the sibling platform that a registration was approved
// so it can mirror the parent/student records. Callers only care about
// ok / not ok.
type SiblingNotifier interface {
	NotifyRegistrationApproved(ctx context.Context, registrationID string) error
}

type HTTPSiblingNotifier struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

func NewHTTPSiblingNotifier(baseURL, apiKey string) *HTTPSiblingNotifier {
	return &HTTPSiblingNotifier{
		BaseURL: baseURL,
		APIKey:  apiKey,
		// hard deadline: the approval saga must not hang on the sibling call
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *HTTPSiblingNotifier) NotifyRegistrationApproved(ctx context.Context, registrationID string) error {
	if n.BaseURL == "" {
		return fmt.Errorf("sibling API not configured")
	}
	body := []byte(fmt.Sprintf(`{"registration_id":%q}`, registrationID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		n.BaseURL+"/internal/registrations/sync", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.APIKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sibling API returned %d", resp.StatusCode)
	}
	return nil
}
