package intercept

import (
	"context"
	"errors"

	"github.com/specialistvlad/odmoptions/internal/ctxlog"
	"github.com/specialistvlad/odmoptions/internal/model"
	"github.com/specialistvlad/odmoptions/internal/unit"
)

// Run drives the config unit's declaration routine to completion and returns
// every option it declared. No table is returned when the routine fails.
func Run(ctx context.Context, u *unit.Unit) (*model.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx = ctxlog.With(ctx, "unit", u.Name)
	logger := ctxlog.FromContext(ctx)

	conv := selectConvention(u)
	logger.Info("Calling convention selected.", "convention", conv.name, "versions", conv.versions, "path", u.Path)

	table := model.NewTable()
	recorder := NewRecorder(table, logger)
	parser := newBinder(u.Runtime()).bind(recorder)

	if err := conv.invoke(conv, u, parser); err != nil {
		logger.Debug("Declaration routine failed.", "convention", conv.name, "error", err)
		return nil, classify(err)
	}

	logger.Info("Declaration routine finished.", "options", table.Len())
	logger.Debug("Parser state after declarations.",
		"positionals", recorder.Parser().Positionals(),
		"usage", recorder.Parser().FlagUsages())
	return table, nil
}

func classify(err error) error {
	var mismatch *ConventionMismatchError
	if errors.As(err, &mismatch) {
		return err
	}
	var declErr *DeclarationError
	if errors.As(err, &declErr) {
		return declErr
	}
	return &DeclarationError{Err: err}
}
