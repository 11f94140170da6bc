package handler

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"tourism-service/internal/module/auth/models/request"
	"tourism-service/internal/module/auth/usecases"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const stateCookie = "oauth_state"

type AuthHandler struct {
	Log         *otelzap.Logger
	Validator   *validator.Validate
	Usecase     usecases.Usecase
	FrontendURL string
}

func (h *AuthHandler) Register(ctx *fiber.Ctx) error {
	var req request.Register
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.Register(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error register: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "user successfully registered")
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var req request.Login
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.Login(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error login: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "user successfully logged in")
}

func (h *AuthHandler) GoogleAuth(ctx *fiber.Ctx) error {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error generate oauth state: %v", err))
		return helpers.RespError(ctx, h.Log, errors.InternalServerError("error generate oauth state"))
	}
	state := hex.EncodeToString(buf)

	ctx.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ctx.Redirect(h.Usecase.GoogleAuthURL(state), fiber.StatusTemporaryRedirect)
}

func (h *AuthHandler) GoogleCallback(ctx *fiber.Ctx) error {
	state := ctx.Query("state")
	if state == "" || state != ctx.Cookies(stateCookie) {
		h.Log.Ctx(ctx.UserContext()).Error("error validate oauth state")
		return helpers.RespError(ctx, h.Log, errors.UnauthorizedError("invalid oauth state"))
	}
	ctx.ClearCookie(stateCookie)

	code := ctx.Query("code")
	if code == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("missing authorization code"))
	}

	resp, err := h.Usecase.GoogleLogin(ctx.UserContext(), code)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error google login: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	redirect := fmt.Sprintf("%s/auth/callback?token=%s", h.FrontendURL, url.QueryEscape(resp.AccessToken))
	return ctx.Redirect(redirect, fiber.StatusFound)
}

func (h *AuthHandler) Profile(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Profile(ctx.UserContext(), helpers.Actor(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get profile: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get profile")
}
