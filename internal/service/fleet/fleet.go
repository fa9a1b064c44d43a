package fleet

import (
	"context"
	"fmt"

	"fleet/internal/entities"
)

// Fleet отвечает за статусы ресурсов (грузовик, водитель, помощник) и
// статистику грузовиков. Восстановление после доставки вызывается
// координатором по каждому ресурсу отдельно.
type Fleet struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Fleet {
	return &Fleet{
		repository: repository,
		txManager:  txManager,
	}
}

// AddTruckDeliveryStats атомарно инкрементирует счетчики грузовика:
// +1 доставка, +distanceKm пробега. Инкремент выполняется на стороне БД,
// конкурентные доставки на одном грузовике не теряют обновления.
func (s *Fleet) AddTruckDeliveryStats(ctx context.Context, truckID int64, distanceKm float64) error {
	if truckID <= 0 {
		return ErrInvalidTruckID
	}

	err := s.repository.IncrementTruckStats(ctx, truckID, distanceKm)
	if err != nil {
		return fmt.Errorf("increment truck stats: %w", err)
	}
	return nil
}

// RestoreTruck возвращает грузовик в свободное состояние после завершения
// доставки: free если на него еще ссылаются активные доставки, иначе available.
// Активная привязка к доставке очищается в любом случае.
func (s *Fleet) RestoreTruck(ctx context.Context, truckID, finishedDeliveryID int64) error {
	if truckID <= 0 {
		return ErrInvalidTruckID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		activeCount, err := s.repository.CountActiveDeliveriesByTruck(ctx, truckID, finishedDeliveryID)
		if err != nil {
			return fmt.Errorf("count active deliveries: %w", err)
		}

		newStatus := entities.TruckAvailable
		if activeCount > 0 {
			newStatus = entities.TruckFree
		}

		var clearDelivery int64
		truckModify := entities.TruckModify{
			ID:                &truckID,
			Status:            &newStatus,
			CurrentDeliveryID: &clearDelivery,
		}

		_, err = s.repository.UpdateTruck(ctx, truckModify)
		if err != nil {
			return fmt.Errorf("update truck status: %w", err)
		}
		return nil
	})

	return err
}

func (s *Fleet) RestoreDriver(ctx context.Context, driverID int64) error {
	if driverID <= 0 {
		return ErrInvalidDriverID
	}

	newStatus := entities.CrewActive
	driverModify := entities.DriverModify{
		ID:     &driverID,
		Status: &newStatus,
	}

	_, err := s.repository.UpdateDriver(ctx, driverModify)
	if err != nil {
		return fmt.Errorf("update driver status: %w", err)
	}
	return nil
}

func (s *Fleet) RestoreHelper(ctx context.Context, helperID int64) error {
	if helperID <= 0 {
		return ErrInvalidHelperID
	}

	newStatus := entities.CrewActive
	helperModify := entities.HelperModify{
		ID:     &helperID,
		Status: &newStatus,
	}

	_, err := s.repository.UpdateHelper(ctx, helperModify)
	if err != nil {
		return fmt.Errorf("update helper status: %w", err)
	}
	return nil
}

func (s *Fleet) UpdateTruck(ctx context.Context, truckModify entities.TruckModify) (*entities.Truck, error) {
	if truckModify.Status == nil && truckModify.CurrentDeliveryID == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if truckModify.Status != nil && !isValidTruckStatus(truckModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	truck, err := s.repository.UpdateTruck(ctx, truckModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update truck: %w", err)
	}
	return truck, nil
}

func (s *Fleet) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.Name == nil && driverModify.Phone == nil && driverModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if driverModify.Status != nil && !isValidCrewStatus(driverModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	driver, err := s.repository.UpdateDriver(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

func (s *Fleet) UpdateHelper(ctx context.Context, helperModify entities.HelperModify) (*entities.Helper, error) {
	if helperModify.Name == nil && helperModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if helperModify.Status != nil && !isValidCrewStatus(helperModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	helper, err := s.repository.UpdateHelper(ctx, helperModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update helper: %w", err)
	}
	return helper, nil
}

func (s *Fleet) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.repository.GetDriverByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return driver, nil
}

func (s *Fleet) GetActiveDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetActiveDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active drivers: %w", err)
	}
	return drivers, nil
}
