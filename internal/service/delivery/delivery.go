package delivery

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

// Coordinator владеет машиной состояний доставки: применяет переход,
// выводит из него эффекты для ресурсов и платежей и шлет уведомление клиенту.
type Coordinator struct {
	log            coordinatorLogger
	repository     Repository
	fleetService   FleetService
	paymentService PaymentService
	notifier       Notifier
	transitions    TransitionFactory
	txManager      TxManager
}

func New(
	log coordinatorLogger,
	repository Repository,
	fleetService FleetService,
	paymentService PaymentService,
	notifier Notifier,
	transitions TransitionFactory,
	txManager TxManager,
) *Coordinator {
	return &Coordinator{
		log:            log,
		repository:     repository,
		fleetService:   fleetService,
		paymentService: paymentService,
		notifier:       notifier,
		transitions:    transitions,
		txManager:      txManager,
	}
}

// AdvanceStatus переводит доставку в target. Первичная запись статуса атомарна
// и единственная, чей отказ возвращается вызывающему; все производные эффекты
// (статистика грузовика, восстановление ресурсов, отмена платежа, уведомление)
// выполняются best-effort после коммита и только логируются.
func (c *Coordinator) AdvanceStatus(
	ctx context.Context,
	deliveryID, actorID int64,
	target entities.DeliveryStatusType,
	location *entities.GeoPoint,
) (*entities.StatusAdvance, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	transition, err := c.transitions.GetTransition(target)
	if err != nil {
		return nil, err
	}

	var updated *entities.Delivery
	err = c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if !c.transitions.IsAllowed(current.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}

		modify := c.transitions.BuildModify(deliveryID, transition, current.HelperID != nil, location, time.Now().UTC())

		updated, err = c.repository.UpdateStatus(ctx, modify)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.applySideEffects(ctx, updated, transition, actorID)

	return &entities.StatusAdvance{
		DeliveryID: updated.ID,
		Status:     updated.Status,
		Message:    transition.SuccessMessage,
	}, nil
}

func (c *Coordinator) applySideEffects(ctx context.Context, d *entities.Delivery, t *Transition, actorID int64) {
	effectLog := c.log.With(
		logger.NewField("delivery", d.ID),
		logger.NewField("status", d.Status.String()),
		logger.NewField("actor", actorID),
	)

	if t.CountsDelivered && d.TruckID != 0 {
		err := c.fleetService.AddTruckDeliveryStats(ctx, d.TruckID, d.DistanceKm)
		if err != nil {
			effectLog.Error("truck stats update failed",
				logger.NewField("truck", d.TruckID),
				logger.NewField("error", err),
			)
		}
	}

	if t.Terminal {
		c.restoreResources(ctx, effectLog, d)
	}

	if t.Target == entities.DeliveryCancelled {
		err := c.paymentService.CancelPayment(ctx, d.ID)
		if err != nil {
			effectLog.Error("payment cancellation failed",
				logger.NewField("error", err),
			)
		}
	}

	if t.Notification != nil {
		err := c.notifier.Create(ctx, entities.Notification{
			RecipientID:    d.ClientID,
			Type:           t.Notification.Type,
			Title:          t.Notification.Title,
			Message:        t.Notification.Message,
			DeliveryID:     d.ID,
			Status:         d.Status.String(),
			ActionRequired: t.Notification.ActionRequired,
			Priority:       t.Notification.Priority,
			IsRead:         false,
		})
		if err != nil {
			effectLog.Error("client notification failed",
				logger.NewField("client", d.ClientID),
				logger.NewField("error", err),
			)
		}
	}
}

// restoreResources возвращает грузовик, водителя и помощника в свободное
// состояние. Обновления независимы: отказ одного ресурса не блокирует остальные.
func (c *Coordinator) restoreResources(ctx context.Context, effectLog logger.Logger, d *entities.Delivery) {
	if d.TruckID != 0 {
		err := c.fleetService.RestoreTruck(ctx, d.TruckID, d.ID)
		if err != nil {
			effectLog.Error("truck restore failed",
				logger.NewField("truck", d.TruckID),
				logger.NewField("error", err),
			)
		}
	}

	if d.DriverID != 0 {
		err := c.fleetService.RestoreDriver(ctx, d.DriverID)
		if err != nil {
			effectLog.Error("driver restore failed",
				logger.NewField("driver", d.DriverID),
				logger.NewField("error", err),
			)
		}
	}

	if d.HelperID != nil {
		err := c.fleetService.RestoreHelper(ctx, *d.HelperID)
		if err != nil {
			effectLog.Error("helper restore failed",
				logger.NewField("helper", *d.HelperID),
				logger.NewField("error", err),
			)
		}
	}
}

// AssignRandomDriver выбирает равновероятно одного из активных водителей и
// закрепляет его за доставкой. Выбор и запись выполняются в одной serializable
// транзакции, чтобы два конкурентных вызова не забрали одного водителя.
func (c *Coordinator) AssignRandomDriver(ctx context.Context, deliveryID int64) (*entities.DriverAssignment, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	assignment := entities.DriverAssignment{}
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := c.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		drivers, err := c.fleetService.GetActiveDrivers(ctx)
		if err != nil {
			return fmt.Errorf("list active drivers: %w", err)
		}
		if len(drivers) == 0 {
			return ErrNoActiveDrivers
		}

		picked := drivers[rand.IntN(len(drivers))]

		err = c.repository.AssignDriver(ctx, deliveryID, picked.ID, picked.Name)
		if err != nil {
			return fmt.Errorf("assign driver: %w", err)
		}

		assignment = entities.DriverAssignment{
			DeliveryID: deliveryID,
			DriverID:   picked.ID,
			DriverName: picked.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}
