package fleet

import "fleet/internal/entities"

func ToTruckDomain(t *TruckDB) *entities.Truck {
	if t == nil {
		return nil
	}
	return &entities.Truck{
		ID:                t.ID,
		PlateNumber:       t.PlateNumber,
		Status:            entities.TruckStatusType(t.Status),
		TotalDeliveries:   t.TotalDeliveries,
		TotalKilometers:   t.TotalKilometers,
		CurrentDeliveryID: t.CurrentDeliveryID,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func ToDriverDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:        d.ID,
		Name:      d.Name,
		Phone:     d.Phone,
		Status:    entities.CrewStatusType(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ToDriverDomainList(drivers []DriverDB) []entities.Driver {
	result := make([]entities.Driver, 0, len(drivers))
	for i := range drivers {
		result = append(result, *ToDriverDomain(&drivers[i]))
	}
	return result
}

func ToHelperDomain(h *HelperDB) *entities.Helper {
	if h == nil {
		return nil
	}
	return &entities.Helper{
		ID:        h.ID,
		Name:      h.Name,
		Status:    entities.CrewStatusType(h.Status),
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
