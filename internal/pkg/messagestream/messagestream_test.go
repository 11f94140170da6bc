package messagestream_test

import (
	"testing"

	"tourism-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	topic    string
	messages []*message.Message
}

func (p *recordingPublisher) Publish(topic string, messages ...*message.Message) error {
	p.topic = topic
	p.messages = append(p.messages, messages...)
	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func TestPublish(t *testing.T) {
	pub := &recordingPublisher{}

	err := messagestream.Publish(pub, messagestream.TopicPackageBooked, map[string]int{"number_of_people": 2})
	require.NoError(t, err)

	assert.Equal(t, messagestream.TopicPackageBooked, pub.topic)
	require.Len(t, pub.messages, 1)
	_, err = uuid.Parse(pub.messages[0].UUID)
	assert.NoError(t, err)

	var payload map[string]int
	require.NoError(t, json.Unmarshal(pub.messages[0].Payload, &payload))
	assert.Equal(t, 2, payload["number_of_people"])
}
