package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"tourism-service/config"
	"tourism-service/internal/module/contact/models/entity"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/log"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

type repositories struct {
	log        log.Logger
	httpClient *circuit.HTTPClient
	cfg        *config.ContactConfig
}

type Repositories interface {
	// http
	SendWebhook(ctx context.Context, payload entity.Webhook) error
}

func New(log log.Logger, httpClient *circuit.HTTPClient, cfg *config.ContactConfig) Repositories {
	return &repositories{
		log:        log,
		httpClient: httpClient,
		cfg:        cfg,
	}
}

// SendWebhook implements Repositories. Any 2xx answer counts as delivered.
func (r *repositories) SendWebhook(ctx context.Context, payload entity.Webhook) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.InternalServerError("error marshal webhook payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return errors.InternalServerError("error build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Error(ctx, "error call contact webhook", err)
		return errors.InternalServerError("error call contact webhook")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		r.log.Error(ctx, "contact webhook rejected message", resp.StatusCode, string(text))
		return errors.InternalServerError(fmt.Sprintf("contact webhook answered %d", resp.StatusCode))
	}

	return nil
}
