package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/odmoptions/internal/ctxlog"
	"github.com/specialistvlad/odmoptions/internal/intercept"
	"github.com/specialistvlad/odmoptions/internal/output"
)

// Run loads the config unit under the configured root, records every option
// its declaration routine declares and emits the result. Nothing is emitted
// when any stage fails.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "run_id", uuid.NewString())
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "root", a.config.Root)

	u, err := a.loader.Load(ctx, a.config.Root)
	if err != nil {
		return fmt.Errorf("failed to load config unit: %w", err)
	}

	table, err := intercept.Run(ctx, u)
	if err != nil {
		return fmt.Errorf("failed to collect options: %w", err)
	}
	logger.Info("Options collected.", "count", table.Len())

	payload, err := output.Encode(table, a.config.Canonical)
	if err != nil {
		return err
	}
	if err := output.Emit(ctx, a.outW, a.config.Output, payload); err != nil {
		return fmt.Errorf("failed to emit options: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}
