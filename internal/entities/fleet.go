package entities

import "time"

type Truck struct {
	ID                int64
	PlateNumber       string
	Status            TruckStatusType
	TotalDeliveries   int64
	TotalKilometers   float64
	CurrentDeliveryID *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type TruckStatusType string

const (
	TruckAvailable   TruckStatusType = "available"
	TruckFree        TruckStatusType = "free"
	TruckOnDelivery  TruckStatusType = "on_delivery"
	TruckMaintenance TruckStatusType = "maintenance"
)

func (t TruckStatusType) String() string {
	return string(t)
}

type Driver struct {
	ID        int64
	Name      string
	Phone     string
	Status    CrewStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Helper struct {
	ID        int64
	Name      string
	Status    CrewStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CrewStatusType статус водителя/помощника: зеркалит статус доставки
// пока экипаж занят и возвращается в active после завершения.
type CrewStatusType string

const (
	CrewActive     CrewStatusType = "active"
	CrewAccepted   CrewStatusType = "accepted"
	CrewInProgress CrewStatusType = "in_progress"
	CrewDelivered  CrewStatusType = "delivered"
	CrewCompleted  CrewStatusType = "completed"
	CrewCancelled  CrewStatusType = "cancelled"
)

func (t CrewStatusType) String() string {
	return string(t)
}

type TruckModify struct {
	ID                *int64
	Status            *TruckStatusType
	CurrentDeliveryID *int64 // ноль очищает активную доставку
}

type DriverModify struct {
	ID     *int64
	Name   *string
	Phone  *string
	Status *CrewStatusType
}

type HelperModify struct {
	ID     *int64
	Name   *string
	Status *CrewStatusType
}
