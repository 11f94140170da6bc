package middleware

import (
	"context"
	"fmt"
	"strings"

	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"
	"tourism-service/internal/pkg/policy"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (policy.Actor, error)
}

type Middleware struct {
	Log       *otelzap.Logger
	Validator TokenValidator
}

func bearer(ctx *fiber.Ctx) (string, bool) {
	auth := ctx.Get(fiber.HeaderAuthorization)
	if len(auth) < 8 || !strings.EqualFold(auth[:7], "Bearer ") {
		return "", false
	}
	return strings.TrimSpace(auth[7:]), true
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	token, ok := bearer(ctx)
	if !ok {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	actor, err := m.Validator.ValidateToken(ctx.UserContext(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, err)
	}

	ctx.Locals(helpers.LocalActor, actor)
	return ctx.Next()
}

// OptionalToken attaches the actor when a valid token is sent and proceeds anonymously otherwise.
func (m *Middleware) OptionalToken(ctx *fiber.Ctx) error {
	if token, ok := bearer(ctx); ok {
		actor, err := m.Validator.ValidateToken(ctx.UserContext(), token)
		if err != nil {
			m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("continue anonymously, invalid token: %v", err))
			return ctx.Next()
		}
		ctx.Locals(helpers.LocalActor, actor)
	}
	return ctx.Next()
}

func (m *Middleware) RequireAdmin(ctx *fiber.Ctx) error {
	if err := policy.RequireAdmin(helpers.Actor(ctx), "access this resource"); err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error check role: %v", err))
		return helpers.RespError(ctx, m.Log, err)
	}
	return ctx.Next()
}
