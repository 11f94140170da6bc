package http

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourism-service/config"
	"tourism-service/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.elastic.co/apm/module/apmfiber"
)

func SetupHttpEngine(cfg *config.HttpServerConfig) *fiber.App {
	fiberCfg := fiber.Config{
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	}
	if len(cfg.TrustedIPs) > 0 {
		fiberCfg.EnableTrustedProxyCheck = true
		fiberCfg.TrustedProxies = cfg.TrustedIPs
		fiberCfg.ProxyHeader = fiber.HeaderXForwardedFor
	}

	app := fiber.New(fiberCfg)

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(apmfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	return app
}

// errorHandler renders errors escaping the handlers (404 routes, body limits) in the
// same envelope as helpers.RespError.
func errorHandler(ctx *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ctx.Status(fe.Code).JSON(helpers.Response{Message: fe.Message})
	}
	return helpers.RespError(ctx, nil, err)
}

func StartHttpServer(app *fiber.App, port string) {
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("error start http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("error shutdown http server: %v", err)
	}
}
