package middleware_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"
	log_internal "tourism-service/internal/pkg/log"
	"tourism-service/internal/pkg/middleware"
	"tourism-service/internal/pkg/policy"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeValidator struct{}

func (fakeValidator) ValidateToken(ctx context.Context, token string) (policy.Actor, error) {
	switch token {
	case "admin":
		return policy.Actor{ID: "1", Role: policy.RoleAdmin}, nil
	case "user":
		return policy.Actor{ID: "2", Role: policy.RoleUser}, nil
	}
	return policy.Actor{}, errors.UnauthorizedError("invalid token")
}

func newApp() *fiber.App {
	m := &middleware.Middleware{Log: log_internal.Setup(), Validator: fakeValidator{}}
	whoami := func(c *fiber.Ctx) error {
		return c.SendString(helpers.Actor(c).ID)
	}

	app := fiber.New()
	app.Get("/private", m.ValidateToken, whoami)
	app.Get("/admin", m.ValidateToken, m.RequireAdmin, whoami)
	app.Get("/optional", m.OptionalToken, whoami)
	return app
}

func call(t *testing.T, app *fiber.App, path, auth string) int {
	req := httptest.NewRequest("GET", path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestValidateToken(t *testing.T) {
	app := newApp()

	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, "/private", ""))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, "/private", "Token user"))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, "/private", "Bearer nope"))
	assert.Equal(t, fiber.StatusOK, call(t, app, "/private", "Bearer user"))
}

func TestRequireAdmin(t *testing.T) {
	app := newApp()

	assert.Equal(t, fiber.StatusForbidden, call(t, app, "/admin", "Bearer user"))
	assert.Equal(t, fiber.StatusOK, call(t, app, "/admin", "Bearer admin"))
}

func TestOptionalToken(t *testing.T) {
	app := newApp()

	assert.Equal(t, fiber.StatusOK, call(t, app, "/optional", ""))
	assert.Equal(t, fiber.StatusOK, call(t, app, "/optional", "Bearer nope"))
	assert.Equal(t, fiber.StatusOK, call(t, app, "/optional", "Bearer user"))
}

func TestOptionalTokenWarnsOnInvalidToken(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	m := &middleware.Middleware{Log: otelzap.New(zap.New(core)), Validator: fakeValidator{}}

	app := fiber.New()
	app.Get("/optional", m.OptionalToken, func(c *fiber.Ctx) error {
		if helpers.Actor(c).IsAnonymous() {
			return c.SendString("anonymous")
		}
		return c.SendString(helpers.Actor(c).ID)
	})

	assert.Equal(t, fiber.StatusOK, call(t, app, "/optional", "Bearer expired"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Contains(t, logs.All()[0].Message, "invalid token")

	assert.Equal(t, fiber.StatusOK, call(t, app, "/optional", "Bearer user"))
	assert.Equal(t, 1, logs.Len())
}
