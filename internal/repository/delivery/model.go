package delivery

import "time"

type DeliveryDB struct {
	ID                         int64
	ClientID                   int64
	TruckID                    int64
	DriverID                   int64
	HelperID                   *int64
	DriverName                 string
	Status                     string
	PaymentStatus              string
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
