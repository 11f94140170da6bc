package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	app := fiber.New()
	app.Post("/auth/login", rl.Limit, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/auth/login", nil))
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests}, codes)
}

func TestIdleVisitorsAreEvicted(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Now()

	rl.getLimiter("10.0.0.1", now)
	rl.getLimiter("10.0.0.2", now.Add(11*time.Minute))

	assert.Len(t, rl.visitors, 1)
	_, ok := rl.visitors["10.0.0.2"]
	assert.True(t, ok)
}
