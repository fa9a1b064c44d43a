package entities

import "time"

type Notification struct {
	ID             int64
	RecipientID    int64
	Type           string
	Title          string
	Message        string
	DeliveryID     int64
	Status         string
	ActionRequired bool
	Priority       NotificationPriorityType
	IsRead         bool
	CreatedAt      time.Time
}

type NotificationPriorityType string

const (
	PriorityNormal NotificationPriorityType = "normal"
	PriorityHigh   NotificationPriorityType = "high"
)

func (p NotificationPriorityType) String() string {
	return string(p)
}
