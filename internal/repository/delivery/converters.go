package delivery

import "fleet/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:                         d.ID,
		ClientID:                   d.ClientID,
		TruckID:                    d.TruckID,
		DriverID:                   d.DriverID,
		HelperID:                   d.HelperID,
		DriverName:                 d.DriverName,
		Status:                     entities.DeliveryStatusType(d.Status),
		PaymentStatus:              entities.PaymentStatusType(d.PaymentStatus),
		Rate:                       d.Rate,
		DistanceKm:                 d.DistanceKm,
		AwaitingClientConfirmation: d.AwaitingClientConfirmation,
		LastLat:                    d.LastLat,
		LastLng:                    d.LastLng,
		AcceptedAt:                 d.AcceptedAt,
		StartedAt:                  d.StartedAt,
		PickedUpAt:                 d.PickedUpAt,
		DeliveredAt:                d.DeliveredAt,
		DriverCompletedAt:          d.DriverCompletedAt,
		CompletedAt:                d.CompletedAt,
		FinalCompletedAt:           d.FinalCompletedAt,
		CancelledAt:                d.CancelledAt,
		CreatedAt:                  d.CreatedAt,
		UpdatedAt:                  d.UpdatedAt,
	}
}

func ToDomainList(deliveries []DeliveryDB) []entities.Delivery {
	result := make([]entities.Delivery, 0, len(deliveries))
	for i := range deliveries {
		result = append(result, *ToDomain(&deliveries[i]))
	}
	return result
}
