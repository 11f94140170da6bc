package usecases

import (
	"context"
	"time"

	"tourism-service/config"
	"tourism-service/internal/module/contact/models/entity"
	"tourism-service/internal/module/contact/models/request"
	"tourism-service/internal/module/contact/repositories"
	"tourism-service/internal/pkg/log"
)

const embedColor = 0x0099ff

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
	cfg  *config.ContactConfig
	now  func() time.Time
}

type Usecase interface {
	Forward(ctx context.Context, payload *request.ContactMessage) error
}

func New(repo repositories.Repositories, log log.Logger, cfg *config.ContactConfig) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
		cfg:  cfg,
		now:  time.Now,
	}
}

// Forward delivers a queued contact message to the webhook. Without a configured webhook
// the message is dropped with a warning.
func (u *usecase) Forward(ctx context.Context, payload *request.ContactMessage) error {
	if u.cfg.WebhookURL == "" {
		u.log.Warn(ctx, "contact webhook not configured, message dropped", payload.Email)
		return nil
	}

	if err := u.repo.SendWebhook(ctx, u.embed(payload)); err != nil {
		return err
	}

	u.log.Info(ctx, "contact message forwarded", payload.Email)
	return nil
}

func (u *usecase) embed(payload *request.ContactMessage) entity.Webhook {
	subject := payload.Subject
	if subject == "" {
		subject = "N/A"
	}

	return entity.Webhook{Embeds: []entity.Embed{{
		Title: "New Contact Message",
		Color: embedColor,
		Fields: []entity.EmbedField{
			{Name: "Name", Value: payload.Name, Inline: true},
			{Name: "Email", Value: payload.Email, Inline: true},
			{Name: "Phone", Value: payload.Phone, Inline: true},
			{Name: "Subject", Value: subject},
			{Name: "Message", Value: payload.Message},
		},
		Footer:    entity.EmbedFooter{Text: u.cfg.FooterText},
		Timestamp: u.now().UTC().Format(time.RFC3339),
	}}}
}
