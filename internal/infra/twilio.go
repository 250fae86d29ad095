package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smartwarehouse/internal/config"
)

const defaultTwilioAPIURL = "https://api.twilio.com"

// ErrTwilioNotConfigured is returned when SMS credentials are missing.
// Alert workers log it and drop the message; nothing retries.
var ErrTwilioNotConfigured = errors.New("twilio: credentials not configured")

// TwilioClient sends SMS through the Twilio Messages REST API. Credentials and
// the recipient come from the injected Config, never from the environment at
// call time.
type TwilioClient struct {
	accountSID string
	authToken  string
	fromNumber string
	toNumber   string
	baseURL    string
	httpClient *http.Client
}

func NewTwilioClient(cfg *config.Config) *TwilioClient {
	base := cfg.TwilioAPIURL
	if base == "" {
		base = defaultTwilioAPIURL
	}
	return &TwilioClient{
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		fromNumber: cfg.TwilioFromNumber,
		toNumber:   cfg.ManagerPhone,
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether the client has usable credentials.
func (c *TwilioClient) Configured() bool {
	return c.accountSID != "" && c.authToken != "" && c.fromNumber != "" && c.toNumber != ""
}

// SendSMS posts one message to the manager's number and returns the message SID.
func (c *TwilioClient) SendSMS(ctx context.Context, body string) (string, error) {
	if !c.Configured() {
		return "", ErrTwilioNotConfigured
	}

	form := url.Values{}
	form.Set("To", c.toNumber)
	form.Set("From", c.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("twilio: create request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("twilio: api unreachable: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		SID     string `json:"sid"`
		Message string `json:"message"` // error detail on 4xx
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("twilio: decode response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("twilio: api returned %d: %s", resp.StatusCode, result.Message)
	}
	return result.SID, nil
}
