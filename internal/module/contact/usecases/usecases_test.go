package usecases

import (
	"context"
	"testing"
	"time"

	"tourism-service/config"
	"tourism-service/internal/module/contact/mocks"
	"tourism-service/internal/module/contact/models/entity"
	"tourism-service/internal/module/contact/models/request"
	log_internal "tourism-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUsecase(t *testing.T, url string) (*usecase, *mocks.Repositories) {
	repo := mocks.NewRepositories(t)
	u := New(repo, log_internal.GetLogger(), &config.ContactConfig{WebhookURL: url, FooterText: "Sent from the tourism website"}).(*usecase)
	u.now = func() time.Time { return time.Date(2025, time.May, 1, 10, 30, 0, 0, time.UTC) }
	return u, repo
}

func TestForward(t *testing.T) {
	ctx := context.Background()
	msg := &request.ContactMessage{Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Message: "Is July good for Spiti?"}

	t.Run("builds embed", func(t *testing.T) {
		u, repo := newTestUsecase(t, "http://hook")
		repo.On("SendWebhook", ctx, mock.MatchedBy(func(w entity.Webhook) bool {
			if len(w.Embeds) != 1 {
				return false
			}
			e := w.Embeds[0]
			return e.Color == 0x0099ff && len(e.Fields) == 5 && e.Fields[3].Value == "N/A" &&
				e.Fields[4].Value == msg.Message && e.Footer.Text == "Sent from the tourism website" &&
				e.Timestamp == "2025-05-01T10:30:00Z"
		})).Return(nil)

		assert.NoError(t, u.Forward(ctx, msg))
	})

	t.Run("webhook failure is returned", func(t *testing.T) {
		u, repo := newTestUsecase(t, "http://hook")
		repo.On("SendWebhook", ctx, mock.Anything).Return(assert.AnError)

		assert.Error(t, u.Forward(ctx, msg))
	})

	t.Run("no webhook configured", func(t *testing.T) {
		u, _ := newTestUsecase(t, "")
		require.NoError(t, u.Forward(ctx, msg))
	})
}
