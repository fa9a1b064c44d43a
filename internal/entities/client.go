package entities

import "time"

type Client struct {
	ID              int64
	Name            string
	PaymentStanding PaymentStandingType
	CanBookTrucks   bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PaymentStandingType агрегированное платежное состояние клиента,
// единственный источник истины для права бронировать грузовики.
type PaymentStandingType string

const (
	StandingCurrent PaymentStandingType = "current"
	StandingOverdue PaymentStandingType = "overdue"
)

func (s PaymentStandingType) String() string {
	return string(s)
}
