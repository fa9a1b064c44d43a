package zap_adapter

import (
	"go.uber.org/zap"
	"fleet/pkg/logger"
)

// ZapAdapter реализует logger.Logger поверх zap production-конфига,
// json в stdout.
type ZapAdapter struct {
	zl *zap.Logger
}

func NewZapAdapter() (*ZapAdapter, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Encoding = "json"

	zl, err := cfg.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return nil, err
	}
	return &ZapAdapter{zl: zl}, nil
}

func (z *ZapAdapter) Info(msg string, fields ...logger.Field) {
	z.zl.Info(msg, toZapFields(fields)...)
}

func (z *ZapAdapter) Warn(msg string, fields ...logger.Field) {
	z.zl.Warn(msg, toZapFields(fields)...)
}

func (z *ZapAdapter) Error(msg string, fields ...logger.Field) {
	z.zl.Error(msg, toZapFields(fields)...)
}

func (z *ZapAdapter) With(fields ...logger.Field) logger.Logger {
	return &ZapAdapter{zl: z.zl.With(toZapFields(fields)...)}
}

func (z *ZapAdapter) Sync() error {
	return z.zl.Sync()
}

func toZapFields(fields []logger.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
