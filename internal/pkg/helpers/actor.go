package helpers

import (
	"tourism-service/internal/pkg/policy"

	"github.com/gofiber/fiber/v2"
)

const LocalActor = "actor"

// Actor returns the authenticated caller stored by the auth middleware, or the anonymous actor.
func Actor(ctx *fiber.Ctx) policy.Actor {
	actor, ok := ctx.Locals(LocalActor).(policy.Actor)
	if !ok {
		return policy.Actor{}
	}
	return actor
}
