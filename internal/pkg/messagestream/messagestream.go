package messagestream

import (
	"fmt"

	"tourism-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	// TopicPackageBooked is consumed outside this service (notifications, reporting).
	TopicPackageBooked   = "package_booked"
	TopicContactMessage  = "contact_message"
	TopicContactPoisoned = "contact_message_poisoned"
)

type Ampq struct {
	cfg    *config.MessageStreamConfig
	logger watermill.LoggerAdapter
	amqp   amqp.Config
}

func NewAmpq(cfg *config.MessageStreamConfig) *Ampq {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	return &Ampq{
		cfg:    cfg,
		logger: watermill.NewStdLogger(false, false),
		amqp:   amqp.NewDurableQueueConfig(uri),
	}
}

func (a *Ampq) NewSubscriber() (message.Subscriber, error) {
	sub, err := amqp.NewSubscriber(a.amqp, a.logger)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (a *Ampq) NewPublisher() (message.Publisher, error) {
	pub, err := amqp.NewPublisher(a.amqp, a.logger)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// NewRouter wires one consumer. A handler error is retried cfg.MaxRetries times and then
// the message is moved to poisonTopic.
func (a *Ampq) NewRouter(publisher message.Publisher, poisonTopic, handlerName, topic string, subscriber message.Subscriber, handlerFunc message.NoPublishHandlerFunc) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, a.logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		poisonQueue,
		middleware.Retry{
			MaxRetries:      a.cfg.MaxRetries,
			InitialInterval: a.cfg.RetryDelay,
			Logger:          a.logger,
		}.Middleware,
	)

	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}

// Publish sends payload as a JSON message on topic under a fresh message id.
func Publish(publisher message.Publisher, topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", topic, err)
	}

	return publisher.Publish(topic, message.NewMessage(uuid.NewString(), data))
}
