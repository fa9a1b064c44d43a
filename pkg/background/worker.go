package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"fleet/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками.
	TTL() time.Duration

	// Do выполняет один проход задачи.
	Do(context.Context) error

	// Info человекочитаемое имя задачи для логов.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker гоняет набор задач по их интервалам до отмены контекста.
type Worker struct {
	log   workerLogger
	tasks []Task
}

// New прогревает задачи и запускает их периодическое выполнение.
// Прогрев синхронный: каждая задача выполняется один раз до возврата,
// ошибка или паника любой из них срывает старт приложения.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	w := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return w, nil
	}

	warmup, warmupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("warmup panic: %v\n%s", r, debug.Stack())
					log.Error("task panic during warmup",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
					)
				}
			}()

			log.Info("warming up task",
				logger.NewField("task", task.Info()),
			)
			return task.Do(warmupCtx)
		})
	}

	if err := warmup.Wait(); err != nil {
		return nil, fmt.Errorf("task warmup: %w", err)
	}

	for _, task := range tasks {
		go w.loop(ctx, task)
	}

	return w, nil
}

func (w *Worker) loop(ctx context.Context, task Task) {
	interval := task.TTL()
	if interval <= 0 {
		w.log.Warn("task has no interval, periodic run disabled",
			logger.NewField("task", task.Info()),
		)
		return
	}

	w.log.Info("task scheduled",
		logger.NewField("task", task.Info()),
		logger.NewField("interval", interval),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("task stopped",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.runOnce(ctx, task)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("task run failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
