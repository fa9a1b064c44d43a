package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager оборачивает go-transaction-manager.
// Do выполняет fn в serializable транзакции: статусные переходы
// и сверка платежей конкурируют за одни и те же строки.
type Manager struct {
	trm *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		trm: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.Serializable}),
	)
	return m.trm.DoWithSettings(ctx, txSettings, fn)
}
