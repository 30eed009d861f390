package unit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dop251/goja"
	"github.com/specialistvlad/odmoptions/internal/fsutil"
)

// Registry holds the runtime and every unit evaluated in it for a single run.
type Registry struct {
	vm     *goja.Runtime
	root   string
	logger *slog.Logger
	units  map[string]*Unit
	byPath map[string]*Unit
}

// NewRegistry creates a Registry with a fresh runtime and its builtins.
func NewRegistry() *Registry {
	r := &Registry{
		vm:     goja.New(),
		logger: slog.Default(),
		units:  make(map[string]*Unit),
		byPath: make(map[string]*Unit),
	}
	r.installBuiltins()
	return r
}

// Runtime returns the registry's runtime.
func (r *Registry) Runtime() *goja.Runtime {
	return r.vm
}

// Lookup returns the unit registered under name.
func (r *Registry) Lookup(name string) (*Unit, bool) {
	u, ok := r.units[name]
	return u, ok
}

// Names returns the registered unit names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// register adds u under its name and path. A later unit with the same name
// replaces the earlier one.
func (r *Registry) register(u *Unit) {
	r.units[u.Name] = u
	r.byPath[u.Path] = u
}

func (r *Registry) unregister(u *Unit) {
	if r.units[u.Name] == u {
		delete(r.units, u.Name)
	}
	if r.byPath[u.Path] == u {
		delete(r.byPath, u.Path)
	}
}

// evaluate runs the unit source at path and registers it under name. The unit
// is registered before its body runs so cyclic requires observe its partial
// exports.
func (r *Registry) evaluate(name, path string) (*Unit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	program, err := goja.Compile(path, wrapSource(string(src)), false)
	if err != nil {
		return nil, err
	}
	wrapper, err := r.vm.RunProgram(program)
	if err != nil {
		return nil, err
	}
	fn, ok := goja.AssertFunction(wrapper)
	if !ok {
		return nil, fmt.Errorf("unit %s did not compile to a function", path)
	}

	module := r.vm.NewObject()
	exports := r.vm.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, err
	}
	u := &Unit{Name: name, Path: path, module: module, reg: r}
	r.register(u)

	_, err = fn(goja.Undefined(),
		exports,
		module,
		r.vm.ToValue(r.requireFor(u)),
		r.vm.ToValue(path),
		r.vm.ToValue(filepath.Dir(path)),
	)
	if err != nil {
		r.unregister(u)
		return nil, err
	}
	return u, nil
}

func wrapSource(src string) string {
	return "(function (exports, module, require, __filename, __dirname) {\n" + src + "\n})"
}

func (r *Registry) requireFor(from *Unit) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		dep, err := r.resolve(from, name)
		if err != nil {
			panic(r.vm.NewGoError(err))
		}
		return dep.Exports()
	}
}

// resolve finds the unit a require call names.
func (r *Registry) resolve(from *Unit, name string) (*Unit, error) {
	if u, ok := r.units[name]; ok {
		return u, nil
	}

	var base string
	switch {
	case strings.HasPrefix(name, "./"), strings.HasPrefix(name, "../"):
		base = filepath.Join(filepath.Dir(from.Path), filepath.FromSlash(name))
	case r.root != "":
		rel := name
		if !strings.Contains(rel, "/") && !strings.HasSuffix(rel, ".js") {
			rel = strings.ReplaceAll(rel, ".", "/")
		}
		base = filepath.Join(r.root, filepath.FromSlash(rel))
	default:
		return nil, fmt.Errorf("cannot find unit %q", name)
	}

	candidates := []string{base + ".js", filepath.Join(base, "__init__.js")}
	if strings.HasSuffix(base, ".js") {
		candidates = []string{base}
	}
	for _, candidate := range candidates {
		if u, ok := r.byPath[candidate]; ok {
			return u, nil
		}
	}
	path, found, err := fsutil.FirstFile(candidates...)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("cannot find unit %q", name)
	}

	r.logger.Debug("Resolving unit from disk.", "require", name, "path", path)
	return r.evaluate(r.nameFor(path), path)
}

// nameFor derives the registry name of a unit file under the root, e.g.
// <root>/opendm/log.js -> "opendm/log".
func (r *Registry) nameFor(path string) string {
	rel, err := filepath.Rel(r.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	rel = strings.TrimSuffix(filepath.ToSlash(rel), ".js")
	return strings.TrimSuffix(rel, "/__init__")
}
