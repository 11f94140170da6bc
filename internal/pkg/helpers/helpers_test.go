package helpers_test

import (
	stderrors "errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := helpers.ParseDate("2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-01-15", helpers.FormatDate(d))

	_, err = helpers.ParseDate("15/01/2025")
	assert.True(t, errors.Is(err, fiber.StatusBadRequest))

	empty, err := helpers.ParseOptionalDate("")
	assert.NoError(t, err)
	assert.Nil(t, empty)
}

func TestQueryParsers(t *testing.T) {
	assert.Equal(t, 3, helpers.QueryInt("3", 1))
	assert.Equal(t, 1, helpers.QueryInt("abc", 1))
	assert.Nil(t, helpers.QueryFloat(""))
	assert.Equal(t, 4.5, *helpers.QueryFloat("4.5"))
	assert.Nil(t, helpers.QueryBool("yes"))
	assert.False(t, *helpers.QueryBool("false"))
}

func TestRespError(t *testing.T) {
	app := fiber.New()
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return helpers.RespError(c, nil, errors.Conflict("schedule overlaps with existing schedule"))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return helpers.RespError(c, nil, stderrors.New("pq: connection refused"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/conflict", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	var parsed helpers.Response
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, "schedule overlaps with existing schedule", parsed.Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "connection refused")
}
