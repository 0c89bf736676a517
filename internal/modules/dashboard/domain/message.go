package domain

import "time"

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"

	TopicReferenceUpdated = "reference.updated"
)

// Message is an upstream change event consumed from the broker.
type Message struct {
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId,omitempty"`
	CompanyID  string            `json:"companyId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// ReferenceUpdate tells a company's websocket subscribers that one of its reference
// collections was replaced.
type ReferenceUpdate struct {
	Topic     string `json:"topic"`
	CompanyID string `json:"companyId"`
	Kind      string `json:"kind"`
	Count     int    `json:"count"`
}

func NewReferenceUpdate(companyID, kind string, count int) ReferenceUpdate {
	return ReferenceUpdate{Topic: TopicReferenceUpdated, CompanyID: companyID, Kind: kind, Count: count}
}
