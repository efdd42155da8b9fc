package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const DefaultEmailJSURL = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSClient calls the EmailJS REST send endpoint.
type EmailJSClient struct {
	URL        string
	PrivateKey string // optional accessToken for strict-mode accounts
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewEmailJSClient(url, privateKey string, logger *zap.Logger) *EmailJSClient {
	if url == "" {
		url = DefaultEmailJSURL
	}
	return &EmailJSClient{
		URL:        url,
		PrivateKey: privateKey,
		HTTPClient: &http.Client{},
		Logger:     logger,
	}
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts msg to EmailJS. Deadlines come from ctx.
func (c *EmailJSClient) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      msg.ServiceID,
		TemplateID:     msg.TemplateID,
		UserID:         msg.PublicKey,
		AccessToken:    c.PrivateKey,
		TemplateParams: msg.Params,
	})
	if err != nil {
		return fmt.Errorf("emailjs: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("emailjs: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: request failed: %w", err)
	}
	defer resp.Body.Close()

	text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("emailjs: send rejected (%d): %s", resp.StatusCode, strings.TrimSpace(string(text)))
	}

	if c.Logger != nil {
		c.Logger.Debug("emailjs: email accepted",
			zap.String("template", msg.TemplateID),
			zap.Int("status", resp.StatusCode))
	}
	return nil
}
