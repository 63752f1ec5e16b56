package portal

import "context"

// EventPublisher receives lifecycle events after a mutation is persisted.
type EventPublisher interface {
	Publish(ctx context.Context, key, eventType string, payload any) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) Publish(context.Context, string, string, any) error {
	return nil
}
