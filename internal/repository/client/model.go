package client

import "time"

type ClientDB struct {
	ID              int64
	Name            string
	PaymentStanding string
	CanBookTrucks   bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
