package services

import (
	EventBus "github.com/asaskevich/EventBus"
)

// TopicCatalogChanged is published after every successful catalog write so
// other components (query caches, editor sessions) can drop stale snapshots.
const TopicCatalogChanged = "catalog.changed"

// CatalogChange describes one committed catalog mutation.
type CatalogChange struct {
	Revision uint64
	Reason   string
}

// Mutation reasons carried on CatalogChange events.
const (
	ChangeReasonSave         = "save"
	ChangeReasonUpdateImages = "update_images"
	ChangeReasonReset        = "reset"
)

// CatalogEventPublisher broadcasts committed catalog mutations.
type CatalogEventPublisher interface {
	PublishCatalogChanged(change CatalogChange)
}

type busPublisher struct {
	bus EventBus.Bus
}

// NewBusPublisher adapts an event bus to the catalog publisher interface.
func NewBusPublisher(bus EventBus.Bus) CatalogEventPublisher {
	return &busPublisher{bus: bus}
}

func (p *busPublisher) PublishCatalogChanged(change CatalogChange) {
	if p.bus == nil {
		return
	}
	p.bus.Publish(TopicCatalogChanged, change)
}
