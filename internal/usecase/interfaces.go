package usecase

import (
	"ludomarket/internal/domain/entity"
)

// EventBus receives domain events in operation order. Publishing is
// fire-and-forget; a failing subscriber never fails the operation.
type EventBus interface {
	Publish(event entity.Event)
}
