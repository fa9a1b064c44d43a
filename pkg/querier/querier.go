package querier

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier выполняет запросы через транзакцию из контекста,
// а при ее отсутствии напрямую через пул.
type Querier struct {
	pool      *pgxpool.Pool
	ctxGetter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, ctxGetter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:      pool,
		ctxGetter: ctxGetter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return q.executor(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return q.executor(ctx).Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return q.executor(ctx).QueryRow(ctx, sql, args...)
}

func (q *Querier) executor(ctx context.Context) pgxv5.Tr {
	return q.ctxGetter.DefaultTrOrDB(ctx, q.pool)
}
