package fleet

import "time"

type TruckDB struct {
	ID                int64
	PlateNumber       string
	Status            string
	TotalDeliveries   int64
	TotalKilometers   float64
	CurrentDeliveryID *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type DriverDB struct {
	ID        int64
	Name      string
	Phone     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type HelperDB struct {
	ID        int64
	Name      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
