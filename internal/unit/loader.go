package unit

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/odmoptions/internal/ctxlog"
	"github.com/specialistvlad/odmoptions/internal/fsutil"
)

// Well-known unit names.
const (
	PackageUnit = "opendm"
	ContextUnit = "context"
	ConfigUnit  = "config"
)

type layoutEntry struct {
	name     string
	rel      string
	required bool
}

// layout lists the units loaded from a source root, in load order.
var layout = []layoutEntry{
	{name: PackageUnit, rel: "opendm/__init__.js"},
	{name: ContextUnit, rel: "opendm/context.js"},
	{name: ConfigUnit, rel: "opendm/config.js", required: true},
}

// Loader evaluates the units of a source root into a Registry.
type Loader struct {
	reg *Registry
}

// NewLoader returns a Loader that populates reg.
func NewLoader(reg *Registry) *Loader {
	return &Loader{reg: reg}
}

// Load evaluates the package, context and config units found under root and
// returns the config unit. Missing package or context units are skipped; any
// unit that is present but fails to evaluate, or a missing config unit, is a
// *LoadError.
func (l *Loader) Load(ctx context.Context, root string) (*Unit, error) {
	logger := ctxlog.FromContext(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &LoadError{Unit: ConfigUnit, Path: root, Err: err}
	}
	isDir, err := fsutil.IsDir(abs)
	if err != nil {
		return nil, &LoadError{Unit: ConfigUnit, Path: abs, Err: err}
	}
	if !isDir {
		return nil, &LoadError{Unit: ConfigUnit, Path: abs, Err: fmt.Errorf("source root is not a directory: %w", ErrUnitNotFound)}
	}

	l.reg.root = abs
	l.reg.logger = logger
	logger.Debug("Loading declaration units.", "root", abs)

	for _, entry := range layout {
		path := filepath.Join(abs, filepath.FromSlash(entry.rel))
		exists, err := fsutil.IsFile(path)
		if err != nil {
			return nil, &LoadError{Unit: entry.name, Path: path, Err: err}
		}
		if !exists {
			if entry.required {
				return nil, &LoadError{Unit: entry.name, Path: path, Err: ErrUnitNotFound}
			}
			logger.Debug("Optional unit not found, skipping.", "unit", entry.name, "path", path)
			continue
		}
		if u, ok := l.reg.byPath[path]; ok {
			// Already pulled in through a sibling's require.
			l.reg.units[entry.name] = u
			continue
		}
		if _, err := l.reg.evaluate(entry.name, path); err != nil {
			return nil, &LoadError{Unit: entry.name, Path: path, Err: err}
		}
		logger.Debug("Unit loaded.", "unit", entry.name, "path", path)
	}

	cfg, _ := l.reg.Lookup(ConfigUnit)
	logger.Info("Declaration units loaded.", "units", l.reg.Names())
	return cfg, nil
}
