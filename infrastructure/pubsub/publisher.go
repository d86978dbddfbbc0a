package pubsub

import (
	"context"

	"cloud.google.com/go/pubsub"

	"clipstream/infrastructure/logger"
)

// IPublisher publishes domain events. Wiring is optional; callers treat a
// nil publisher as "no messaging configured".
type IPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) (string, error)
}

type Publisher struct {
	client *pubsub.Client
}

func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	return pubsub.NewClient(ctx, projectID)
}

func NewPublisher(client *pubsub.Client) IPublisher {
	return &Publisher{client: client}
}

func (p *Publisher) Publish(ctx context.Context, topicName string, payload []byte) (string, error) {
	topic := p.client.Topic(topicName)

	exists, err := topic.Exists(ctx)
	if err != nil {
		return "", err
	}
	if !exists {
		logger.GetLogger().WithField("topic", topicName).Info("Topic doesn't exist - creating it")
		if _, err := p.client.CreateTopic(ctx, topicName); err != nil {
			return "", err
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		return "", err
	}
	logger.GetLogger().WithField("serverId", serverID).Debug("Message published")
	return serverID, nil
}
