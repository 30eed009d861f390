package intercept

import (
	"github.com/dop251/goja"
	"github.com/specialistvlad/odmoptions/internal/unit"
)

// convention is one way of handing the parser to a config unit.
type convention struct {
	name     string
	versions string
	invoke   func(c convention, u *unit.Unit, parser *goja.Object) error
}

var (
	// keywordParser calls config({parser: recorder}).
	keywordParser = convention{name: "keyword-parser", versions: ">=2.0", invoke: invokeWithKeyword}
	// moduleParser assigns exports.parser, then calls config().
	moduleParser = convention{name: "module-parser", versions: "1.0", invoke: invokeWithModuleParser}
)

// selectConvention checks the unit once: a parser attribute, whatever its
// value, means the 1.0 convention.
func selectConvention(u *unit.Unit) convention {
	if u.Has("parser") {
		return moduleParser
	}
	return keywordParser
}

func invokeWithKeyword(c convention, u *unit.Unit, parser *goja.Object) error {
	entry, err := entryPoint(c, u)
	if err != nil {
		return err
	}
	kwargs := u.Runtime().NewObject()
	if err := kwargs.Set("parser", parser); err != nil {
		return err
	}
	_, err = entry(u.Exports(), kwargs)
	return err
}

func invokeWithModuleParser(c convention, u *unit.Unit, parser *goja.Object) error {
	if err := u.Set("parser", parser); err != nil {
		return err
	}
	entry, err := entryPoint(c, u)
	if err != nil {
		return err
	}
	_, err = entry(u.Exports())
	return err
}

func entryPoint(c convention, u *unit.Unit) (goja.Callable, error) {
	v := u.Get("config")
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, &ConventionMismatchError{Convention: c.name, Reason: "config unit has no config entry point"}
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, &ConventionMismatchError{Convention: c.name, Reason: "config entry point is not callable"}
	}
	return fn, nil
}
