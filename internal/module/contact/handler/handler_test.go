package handler_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"tourism-service/internal/module/contact/handler"
	"tourism-service/internal/module/contact/mocks"
	"tourism-service/internal/module/contact/models/request"
	log_internal "tourism-service/internal/pkg/log"
	"tourism-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h   *handler.ContactHandler
	ucm *mocks.Usecase
	pub *mockPublisher
	app *fiber.App
)

type mockPublisher struct {
	topic    string
	messages []*message.Message
	err      error
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.topic = topic
	m.messages = append(m.messages, messages...)
	return m.err
}

func setup(t *testing.T) {
	ucm = mocks.NewUsecase(t)
	pub = &mockPublisher{}
	h = &handler.ContactHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
		Publish:   pub,
	}
	app = fiber.New()
	app.Post("/contact", h.SendMessage)
}

func post(t *testing.T, payload interface{}) int {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func validMessage() request.ContactMessage {
	return request.ContactMessage{Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Message: "Is July good for Spiti?"}
}

func TestSendMessage(t *testing.T) {
	t.Run("queued", func(t *testing.T) {
		setup(t)
		assert.Equal(t, fiber.StatusAccepted, post(t, validMessage()))
		assert.Equal(t, messagestream.TopicContactMessage, pub.topic)
		require.Len(t, pub.messages, 1)
	})

	t.Run("invalid email", func(t *testing.T) {
		setup(t)
		msg := validMessage()
		msg.Email = "asha"
		assert.Equal(t, fiber.StatusBadRequest, post(t, msg))
		assert.Empty(t, pub.messages)
	})

	t.Run("broker down", func(t *testing.T) {
		setup(t)
		pub.err = assert.AnError
		assert.Equal(t, fiber.StatusInternalServerError, post(t, validMessage()))
	})
}

func TestConsumeContactMessage(t *testing.T) {
	payload, _ := json.Marshal(validMessage())

	t.Run("forwarded", func(t *testing.T) {
		setup(t)
		ucm.On("Forward", mock.Anything, mock.MatchedBy(func(r *request.ContactMessage) bool {
			return r.Email == "asha@example.com"
		})).Return(nil)

		msg := message.NewMessage(uuid.NewString(), payload)
		msg.SetContext(context.Background())
		assert.NoError(t, h.ConsumeContactMessage(msg))
	})

	t.Run("forward failure goes back to the router", func(t *testing.T) {
		setup(t)
		ucm.On("Forward", mock.Anything, mock.Anything).Return(assert.AnError)

		assert.Error(t, h.ConsumeContactMessage(message.NewMessage(uuid.NewString(), payload)))
	})

	t.Run("malformed payload", func(t *testing.T) {
		setup(t)
		assert.Error(t, h.ConsumeContactMessage(message.NewMessage(uuid.NewString(), []byte("{"))))
	})

	t.Run("invalid payload", func(t *testing.T) {
		setup(t)
		body, _ := json.Marshal(request.ContactMessage{Name: "Asha"})
		assert.Error(t, h.ConsumeContactMessage(message.NewMessage(uuid.NewString(), body)))
	})
}
