package delivery_transition

import (
	"fmt"
	"time"

	"fleet/internal/entities"
	"fleet/internal/service/delivery"
)

type TransitionFactory struct{}

func New() *TransitionFactory {
	return &TransitionFactory{}
}

func (f *TransitionFactory) GetTransition(target entities.DeliveryStatusType) (*delivery.Transition, error) {
	switch target {
	case entities.DeliveryAccepted:
		return &delivery.Transition{
			Target:     entities.DeliveryAccepted,
			CrewStatus: entities.CrewAccepted,
			Notification: &delivery.NotificationTemplate{
				Type:     "delivery_accepted",
				Title:    "Delivery Accepted",
				Message:  "Your delivery has been accepted by the driver.",
				Priority: entities.PriorityNormal,
			},
			SuccessMessage: "Delivery accepted successfully.",
		}, nil

	case entities.DeliveryStarted:
		return &delivery.Transition{
			Target:     entities.DeliveryStarted,
			CrewStatus: entities.CrewInProgress,
			Notification: &delivery.NotificationTemplate{
				Type:     "delivery_started",
				Title:    "Delivery Started",
				Message:  "Your delivery is on its way.",
				Priority: entities.PriorityNormal,
			},
			SuccessMessage: "Delivery started successfully.",
		}, nil

	case entities.DeliveryPickedUp:
		return &delivery.Transition{
			Target:     entities.DeliveryPickedUp,
			CrewStatus: entities.CrewInProgress,
			Notification: &delivery.NotificationTemplate{
				Type:     "delivery_picked_up",
				Title:    "Cargo Picked Up",
				Message:  "Your cargo has been picked up.",
				Priority: entities.PriorityNormal,
			},
			SuccessMessage: "Cargo picked up successfully.",
		}, nil

	case entities.DeliveryDelivered:
		return &delivery.Transition{
			Target:          entities.DeliveryDelivered,
			CrewStatus:      entities.CrewDelivered,
			Terminal:        true,
			CountsDelivered: true,
			Notification: &delivery.NotificationTemplate{
				Type:           "delivery_delivered",
				Title:          "Delivery Completed",
				Message:        "Your delivery has arrived. Please confirm completion.",
				ActionRequired: true,
				Priority:       entities.PriorityHigh,
			},
			SuccessMessage: "Delivery marked as delivered. Awaiting client confirmation.",
		}, nil

	case entities.DeliveryCompleted:
		return &delivery.Transition{
			Target:         entities.DeliveryCompleted,
			CrewStatus:     entities.CrewCompleted,
			Terminal:       true,
			SuccessMessage: "Delivery completed successfully.",
		}, nil

	case entities.DeliveryCancelled:
		return &delivery.Transition{
			Target:         entities.DeliveryCancelled,
			CrewStatus:     entities.CrewCancelled,
			Terminal:       true,
			SuccessMessage: "Delivery cancelled.",
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", delivery.ErrUnknownStatus, target)
	}
}

// allowed замкнутый граф переходов: повтор текущего статуса запрещен,
// отмена доступна из любого незавершенного состояния.
var allowed = map[entities.DeliveryStatusType][]entities.DeliveryStatusType{
	entities.DeliveryPending:   {entities.DeliveryAccepted, entities.DeliveryCancelled},
	entities.DeliveryAccepted:  {entities.DeliveryStarted, entities.DeliveryCancelled},
	entities.DeliveryStarted:   {entities.DeliveryPickedUp, entities.DeliveryCancelled},
	entities.DeliveryPickedUp:  {entities.DeliveryDelivered, entities.DeliveryCancelled},
	entities.DeliveryDelivered: {entities.DeliveryCompleted, entities.DeliveryCancelled},
}

func (f *TransitionFactory) IsAllowed(from, to entities.DeliveryStatusType) bool {
	for _, next := range allowed[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BuildModify собирает атомарное обновление доставки для перехода:
// статус, зеркальные статусы экипажа, таймстемпы и координаты одной записью.
func (f *TransitionFactory) BuildModify(
	deliveryID int64,
	t *delivery.Transition,
	hasHelper bool,
	location *entities.GeoPoint,
	now time.Time,
) entities.DeliveryStatusModify {
	modify := entities.DeliveryStatusModify{
		ID:           &deliveryID,
		Status:       &t.Target,
		DriverStatus: &t.CrewStatus,
		Location:     location,
	}
	if hasHelper {
		modify.HelperStatus = &t.CrewStatus
	}

	switch t.Target {
	case entities.DeliveryAccepted:
		modify.AcceptedAt = &now
	case entities.DeliveryStarted:
		modify.StartedAt = &now
	case entities.DeliveryPickedUp:
		modify.PickedUpAt = &now
	case entities.DeliveryDelivered:
		modify.DeliveredAt = &now
		modify.DriverCompletedAt = &now
		awaiting := true
		modify.AwaitingClientConfirmation = &awaiting
	case entities.DeliveryCompleted:
		modify.CompletedAt = &now
		modify.FinalCompletedAt = &now
		awaiting := false
		modify.AwaitingClientConfirmation = &awaiting
	case entities.DeliveryCancelled:
		modify.CancelledAt = &now
	}

	return modify
}
