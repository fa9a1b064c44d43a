package entities

import "time"

type Delivery struct {
	ID                         int64
	ClientID                   int64
	TruckID                    int64
	DriverID                   int64
	HelperID                   *int64
	DriverName                 string
	Status                     DeliveryStatusType
	PaymentStatus              PaymentStatusType
	Rate                       float64
	DistanceKm                 float64
	AwaitingClientConfirmation bool
	LastLat                    *float64
	LastLng                    *float64
	AcceptedAt                 *time.Time
	StartedAt                  *time.Time
	PickedUpAt                 *time.Time
	DeliveredAt                *time.Time
	DriverCompletedAt          *time.Time
	CompletedAt                *time.Time
	FinalCompletedAt           *time.Time
	CancelledAt                *time.Time
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryAccepted  DeliveryStatusType = "accepted"
	DeliveryStarted   DeliveryStatusType = "started"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCompleted DeliveryStatusType = "completed"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

type GeoPoint struct {
	Lat float64
	Lng float64
}

// DeliveryStatusModify описывает одно атомарное обновление статуса доставки.
// Все поля кроме ID опциональные, репозиторий пишет только заданные.
type DeliveryStatusModify struct {
	ID                         *int64
	Status                     *DeliveryStatusType
	PaymentStatus              *PaymentStatusType
	DriverStatus               *CrewStatusType
	HelperStatus               *CrewStatusType
	AwaitingClientConfirmation *bool
	Location                   *GeoPoint
	AcceptedAt                 *time.Time
	StartedAt                  *time.Time
	PickedUpAt                 *time.Time
	DeliveredAt                *time.Time
	DriverCompletedAt          *time.Time
	CompletedAt                *time.Time
	FinalCompletedAt           *time.Time
	CancelledAt                *time.Time
}

// StatusAdvance результат успешного перехода статуса.
type StatusAdvance struct {
	DeliveryID int64
	Status     DeliveryStatusType
	Message    string
}

// DriverAssignment результат случайного назначения водителя на доставку.
type DriverAssignment struct {
	DeliveryID int64
	DriverID   int64
	DriverName string
}
