package unit

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dop251/goja"
	"github.com/specialistvlad/odmoptions/internal/testutil"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, files map[string]string) (*Unit, *Registry, error) {
	t.Helper()
	root := testutil.WriteTree(t, files)
	reg := NewRegistry()
	u, err := NewLoader(reg).Load(context.Background(), root)
	return u, reg, err
}

func TestLoad_ConfigOnly(t *testing.T) {
	u, reg, err := load(t, map[string]string{
		"opendm/config.js": `exports.config = function () {}; exports.version = '2.8.0';`,
	})
	require.NoError(t, err)
	require.Equal(t, ConfigUnit, u.Name)
	require.True(t, u.Has("config"))
	require.False(t, u.Has("parser"))
	require.Equal(t, "2.8.0", u.Get("version").String())
	require.Equal(t, []string{ConfigUnit}, reg.Names(), "missing siblings are skipped")
}

func TestLoad_SiblingsAreRegisteredAndResolvable(t *testing.T) {
	u, reg, err := load(t, map[string]string{
		"opendm/__init__.js": `exports.name = 'opendm';`,
		"opendm/context.js":  `exports.num_cores = 8;`,
		"opendm/config.js": `
			var ctx = require('context');
			var pkg = require('opendm');
			var rel = require('./context');
			exports.cores = ctx.num_cores;
			exports.pkg = pkg.name;
			exports.same = (ctx === rel);
		`,
	})
	require.NoError(t, err)
	require.Equal(t, []string{ConfigUnit, ContextUnit, PackageUnit}, reg.Names())
	require.Equal(t, int64(8), u.Get("cores").ToInteger())
	require.Equal(t, "opendm", u.Get("pkg").String())
	require.True(t, u.Get("same").ToBoolean(), "relative and named requires must yield the same unit")
}

func TestLoad_ResolvesUnitsUnderRoot(t *testing.T) {
	u, reg, err := load(t, map[string]string{
		"opendm/log.js":            `exports.level = 'info';`,
		"opendm/types/__init__.js": `exports.kind = 'types';`,
		"opendm/config.js": `
			exports.level = require('opendm/log').level;
			exports.kind = require('opendm.types').kind;
			exports.again = (require('./log') === require('opendm/log'));
		`,
	})
	require.NoError(t, err)
	require.Equal(t, "info", u.Get("level").String())
	require.Equal(t, "types", u.Get("kind").String())
	require.True(t, u.Get("again").ToBoolean(), "units are loaded once")

	_, ok := reg.Lookup("opendm/log")
	require.True(t, ok)
	_, ok = reg.Lookup("opendm/types")
	require.True(t, ok)
}

func TestLoad_MissingConfigIsALoadError(t *testing.T) {
	_, _, err := load(t, map[string]string{
		"opendm/context.js": `exports.num_cores = 1;`,
	})
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T", err)
	require.Equal(t, ConfigUnit, loadErr.Unit)
	require.Equal(t, "config.js", filepath.Base(loadErr.Path))
	require.ErrorIs(t, err, ErrUnitNotFound)
}

func TestLoad_RootMustBeADirectory(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"file.txt": "x"})

	_, err := NewLoader(NewRegistry()).Load(context.Background(), filepath.Join(root, "file.txt"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.ErrorIs(t, err, ErrUnitNotFound)

	_, err = NewLoader(NewRegistry()).Load(context.Background(), filepath.Join(root, "nope"))
	require.ErrorAs(t, err, &loadErr)
}

func TestLoad_FailingUnitsAreFatal(t *testing.T) {
	testCases := []struct {
		name     string
		files    map[string]string
		wantUnit string
		wantMsg  string
	}{
		{
			name:     "syntax error in config",
			files:    map[string]string{"opendm/config.js": `exports.config = function ( {`},
			wantUnit: ConfigUnit,
		},
		{
			name:     "config throws while loading",
			files:    map[string]string{"opendm/config.js": `throw new Error('boom');`},
			wantUnit: ConfigUnit,
			wantMsg:  "boom",
		},
		{
			name: "present sibling throws",
			files: map[string]string{
				"opendm/context.js": `throw new Error('context broken');`,
				"opendm/config.js":  `exports.config = function () {};`,
			},
			wantUnit: ContextUnit,
			wantMsg:  "context broken",
		},
		{
			name:     "unresolvable require",
			files:    map[string]string{"opendm/config.js": `var gdal = require('osgeo/gdal');`},
			wantUnit: ConfigUnit,
			wantMsg:  "cannot find unit",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, reg, err := load(t, tc.files)
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			require.Equal(t, tc.wantUnit, loadErr.Unit)
			if tc.wantMsg != "" {
				require.Contains(t, err.Error(), tc.wantMsg)
			}
			_, ok := reg.Lookup(tc.wantUnit)
			require.False(t, ok, "a failed unit must not stay registered")
		})
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLoader(NewRegistry()).Load(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuiltins_TypeTokensAreNamedFunctions(t *testing.T) {
	vm := NewRegistry().Runtime()
	for _, name := range []string{"int", "float", "str", "bool"} {
		v, err := vm.RunString(name + ".name")
		require.NoError(t, err)
		require.Equal(t, name, v.String())
	}

	v, err := vm.RunString(`int('42.7')`)
	require.NoError(t, err)
	require.Equal(t, int64(42), v.ToInteger())

	_, err = vm.RunString(`int('many')`)
	require.Error(t, err)

	v, err = vm.RunString(`SUPPRESS`)
	require.NoError(t, err)
	require.Equal(t, "==SUPPRESS==", v.String())
}

func TestUnit_SetIsVisibleToTheUnit(t *testing.T) {
	u, _, err := load(t, map[string]string{
		"opendm/config.js": `exports.parser = null; exports.read = function () { return exports.parser; };`,
	})
	require.NoError(t, err)
	require.True(t, u.Has("parser"), "a null attribute still exists")

	require.NoError(t, u.Set("parser", "recorder"))
	read, ok := goja.AssertFunction(u.Get("read"))
	require.True(t, ok)
	v, err := read(goja.Undefined())
	require.NoError(t, err)
	require.Equal(t, "recorder", v.String())
}
