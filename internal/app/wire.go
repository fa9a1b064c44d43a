//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	paymongoGateway "fleet/internal/gateway/paymongo"
	client_payments_get "fleet/internal/handlers/rest/client_payments_get"
	delivery_assign_driver_post "fleet/internal/handlers/rest/delivery_assign_driver_post"
	delivery_status_post "fleet/internal/handlers/rest/delivery_status_post"
	payment_cancel_post "fleet/internal/handlers/rest/payment_cancel_post"
	payment_create_post "fleet/internal/handlers/rest/payment_create_post"
	payment_webhook_post "fleet/internal/handlers/rest/payment_webhook_post"
	"fleet/internal/handlers/tasks/payment_overdue"
	"fleet/internal/pkg/config"
	"fleet/internal/pkg/factory/delivery_transition"
	"fleet/internal/pkg/factory/payment_fee"

	clientRepo "fleet/internal/repository/client"
	deliveryRepo "fleet/internal/repository/delivery"
	fleetRepo "fleet/internal/repository/fleet"
	notificationRepo "fleet/internal/repository/notification"
	paymentRepo "fleet/internal/repository/payment"
	deliveryService "fleet/internal/service/delivery"
	fleetService "fleet/internal/service/fleet"
	paymentService "fleet/internal/service/payment"

	"fleet/pkg/background"
	"fleet/pkg/logger"
	"fleet/pkg/querier"
	"fleet/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OverdueInterval time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServicePayment    ServicePayment
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	delivery_status_post.Service
	delivery_assign_driver_post.Service
}

type ServicePayment interface {
	payment_create_post.Service
	payment_cancel_post.Service
	payment_webhook_post.Service
	client_payments_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOverdueInterval,

		provideDeliveryRepository,
		provideFleetRepository,
		providePaymentRepository,
		provideClientRepository,
		provideNotificationRepository,

		provideHTTPClient,
		providePayMongoGateway,

		provideServiceFleet,
		provideServicePayment,
		provideServiceDelivery,
		delivery_transition.New,
		payment_fee.New,

		providePaymentOverdueTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Coordinator)),
		wire.Bind(new(ServicePayment), new(*paymentService.Synchronizer)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.FleetService), new(*fleetService.Fleet)),
		wire.Bind(new(deliveryService.PaymentService), new(*paymentService.Synchronizer)),
		wire.Bind(new(deliveryService.Notifier), new(*notificationRepo.Repository)),
		wire.Bind(new(deliveryService.TransitionFactory), new(*delivery_transition.TransitionFactory)),

		wire.Bind(new(fleetService.Repository), new(*fleetRepo.Repository)),

		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.Deliveries), new(*deliveryRepo.Repository)),
		wire.Bind(new(paymentService.Clients), new(*clientRepo.Repository)),
		wire.Bind(new(paymentService.Gateway), new(*paymongoGateway.PayMongoGateway)),
		wire.Bind(new(paymentService.FeeFactory), new(*payment_fee.FeeFactory)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(fleetService.TxManager), new(*tx.Manager)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(payment_overdue.Service), new(*paymentService.Synchronizer)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Synchronizer
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDeliveryRepository,
		providePaymentRepository,
		provideClientRepository,

		provideHTTPClient,
		providePayMongoGateway,

		provideServicePayment,
		payment_fee.New,

		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.Deliveries), new(*deliveryRepo.Repository)),
		wire.Bind(new(paymentService.Clients), new(*clientRepo.Repository)),
		wire.Bind(new(paymentService.Gateway), new(*paymongoGateway.PayMongoGateway)),
		wire.Bind(new(paymentService.FeeFactory), new(*payment_fee.FeeFactory)),

		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideFleetRepository(querier *querier.Querier) *fleetRepo.Repository {
	return fleetRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideClientRepository(querier *querier.Querier) *clientRepo.Repository {
	return clientRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.PayMongo.Timeout}
}

func providePayMongoGateway(client *http.Client, cfg *config.Config) *paymongoGateway.PayMongoGateway {
	return paymongoGateway.New(client, paymongoGateway.Config{
		BaseURL:    cfg.PayMongo.BaseURL,
		SecretKey:  cfg.PayMongo.SecretKey,
		SuccessURL: cfg.PayMongo.SuccessURL,
		FailedURL:  cfg.PayMongo.FailedURL,
	})
}

func provideServiceFleet(
	repository fleetService.Repository,
	txManager fleetService.TxManager,
) *fleetService.Fleet {
	return fleetService.New(repository, txManager)
}

func provideServicePayment(
	log logger.Logger,
	repository paymentService.Repository,
	deliveries paymentService.Deliveries,
	clients paymentService.Clients,
	gateway paymentService.Gateway,
	fees paymentService.FeeFactory,
	txManager paymentService.TxManager,
) *paymentService.Synchronizer {
	return paymentService.New(log, repository, deliveries, clients, gateway, fees, txManager)
}

func provideServiceDelivery(
	log logger.Logger,
	repository deliveryService.Repository,
	fleetSvc deliveryService.FleetService,
	paymentSvc deliveryService.PaymentService,
	notifier deliveryService.Notifier,
	transitions deliveryService.TransitionFactory,
	txManager deliveryService.TxManager,
) *deliveryService.Coordinator {
	return deliveryService.New(log, repository, fleetSvc, paymentSvc, notifier, transitions, txManager)
}

func provideOverdueInterval(cfg *config.Config) OverdueInterval {
	return OverdueInterval(cfg.Tasks.PaymentOverdueInterval)
}

func providePaymentOverdueTask(
	log logger.Logger,
	paymentSvc payment_overdue.Service,
	interval OverdueInterval,
) *payment_overdue.PaymentOverdue {
	return payment_overdue.NewPaymentOverdue(log, paymentSvc, time.Duration(interval))
}

func provideTaskList(
	paymentOverdueTask *payment_overdue.PaymentOverdue,
) []background.Task {
	return []background.Task{
		paymentOverdueTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
