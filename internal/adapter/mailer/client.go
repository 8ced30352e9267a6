package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"text/template"
	"time"

	"github.com/strandart/shop/internal/domain/model"
)

// Client exposes the mail deliveries the storefront sends.
type Client interface {
	SendOrderConfirmation(ctx context.Context, to, orderReference string) error
	SendPasscode(ctx context.Context, to string, purpose model.PasscodePurpose, code string) error
}

// HTTPClient implements Client against an HTTP mail relay.
type HTTPClient struct {
	baseURL    *url.URL
	sender     string
	httpClient *http.Client
	logger     *slog.Logger
}

// message mirrors the JSON payload the relay accepts.
type message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

var orderConfirmationTmpl = template.Must(template.New("orderConfirmation").Parse(`<html>
<body>
<p>Thank you for your order!</p>
<p>Your order reference is <strong>{{.Reference}}</strong>. We will email you again once the piece ships.</p>
</body>
</html>`))

var passcodeTmpl = template.Must(template.New("passcode").Parse(`<html>
<body>
<p>Your one-time code is <strong>{{.Code}}</strong>.</p>
<p>It expires shortly. If you did not request it, ignore this email.</p>
</body>
</html>`))

// NewHTTPClient creates a relay client with default timeout.
func NewHTTPClient(baseURL, sender string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mail relay url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("mail relay url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		sender:  sender,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SendOrderConfirmation emails a checkout confirmation.
func (c *HTTPClient) SendOrderConfirmation(ctx context.Context, to, orderReference string) error {
	html, err := render(orderConfirmationTmpl, struct{ Reference string }{Reference: orderReference})
	if err != nil {
		return err
	}
	return c.send(ctx, message{
		From:    c.sender,
		To:      to,
		Subject: "Your Strandart order " + orderReference,
		HTML:    html,
	})
}

// SendPasscode emails a one-time signup or password-reset code.
func (c *HTTPClient) SendPasscode(ctx context.Context, to string, purpose model.PasscodePurpose, code string) error {
	html, err := render(passcodeTmpl, struct{ Code string }{Code: code})
	if err != nil {
		return err
	}

	subject := "Your Strandart signup code"
	if purpose == model.PasscodePurposeReset {
		subject = "Your Strandart password reset code"
	}

	return c.send(ctx, message{
		From:    c.sender,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
}

func (c *HTTPClient) send(ctx context.Context, msg message) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/send")

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("mail relay request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("mail relay error: %s", resp.Status)
	}
	return nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render mail template: %w", err)
	}
	return buf.String(), nil
}
