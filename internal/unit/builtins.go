package unit

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dop251/goja"
)

// prelude declares the type tokens units pass as `type`. They are named
// functions so their captured text is their name.
const prelude = `
function int(v) {
	var n = Number(v);
	if (!isFinite(n)) { throw new TypeError("invalid literal for int(): " + v); }
	return Math.trunc(n);
}
function float(v) {
	var n = Number(v);
	if (isNaN(n)) { throw new TypeError("could not convert string to float: " + v); }
	return n;
}
function str(v) { return String(v); }
function bool(v) { return Boolean(v); }
var SUPPRESS = "==SUPPRESS==";
`

func (r *Registry) installBuiltins() {
	if _, err := r.vm.RunString(prelude); err != nil {
		panic(err)
	}

	console := r.vm.NewObject()
	for name, level := range map[string]slog.Level{
		"log":   slog.LevelDebug,
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		_ = console.Set(name, r.consoleFunc(level))
	}
	_ = r.vm.Set("console", console)
}

func (r *Registry) consoleFunc(level slog.Level) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		r.logger.Log(context.Background(), level, strings.Join(parts, " "), "source", "unit")
		return goja.Undefined()
	}
}
