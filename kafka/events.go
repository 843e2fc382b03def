package kafka

import "time"

// InventoryEvent describes a committed change to a category or bike
type InventoryEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Resource   string    `json:"resource"`
	ResourceID uint      `json:"resource_id"`
	Payload    any       `json:"payload,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Resources
const (
	ResourceCategory = "category"
	ResourceBike     = "bike"
)

// Event types
const (
	EventTypeCategoryCreated = "category.created"
	EventTypeCategoryUpdated = "category.updated"
	EventTypeCategoryDeleted = "category.deleted"
	EventTypeBikeCreated     = "bike.created"
	EventTypeBikeUpdated     = "bike.updated"
	EventTypeBikeDeleted     = "bike.deleted"
)

// Kafka topics
const (
	TopicInventoryEvents = "inventory-events"
)
