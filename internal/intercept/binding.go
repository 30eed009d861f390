package intercept

import (
	"github.com/dop251/goja"
	"github.com/specialistvlad/odmoptions/internal/flagset"
)

// binder exposes Sinks to a runtime as parser objects.
type binder struct {
	vm        *goja.Runtime
	stringify goja.Callable
}

func newBinder(vm *goja.Runtime) *binder {
	b := &binder{vm: vm}
	if json := vm.Get("JSON"); json != nil {
		b.stringify, _ = goja.AssertFunction(json.ToObject(vm).Get("stringify"))
	}
	return b
}

// bind returns a parser object whose add_argument and
// add_mutually_exclusive_group calls go to sink. A rejected declaration is
// thrown into the runtime, so the routine unwinds as it would with a real
// parser.
func (b *binder) bind(sink Sink) *goja.Object {
	obj := b.vm.NewObject()
	_ = obj.Set("add_argument", func(call goja.FunctionCall) goja.Value {
		names, kwargs := b.declaration(call.Arguments)
		if err := sink.AddArgument(names, kwargs); err != nil {
			panic(b.vm.NewGoError(err))
		}
		return goja.Undefined()
	})
	_ = obj.Set("add_mutually_exclusive_group", func(goja.FunctionCall) goja.Value {
		return b.bind(sink.AddMutuallyExclusiveGroup())
	})
	return obj
}

// declaration splits add_argument arguments into names and keywords. A
// trailing plain object carries the keywords.
func (b *binder) declaration(args []goja.Value) ([]string, []flagset.Keyword) {
	var names []string
	var kwargs []flagset.Keyword
	for i, arg := range args {
		if obj, ok := arg.(*goja.Object); ok && i == len(args)-1 && obj.ClassName() == "Object" {
			for _, key := range obj.Keys() {
				kwargs = append(kwargs, b.keyword(key, obj.Get(key)))
			}
			break
		}
		names = append(names, arg.String())
	}
	return names, kwargs
}

// keyword reduces a value to the text that is recorded for it: callables by
// name, arrays and plain objects as JSON, everything else as the runtime
// prints it.
func (b *binder) keyword(name string, v goja.Value) flagset.Keyword {
	kw := flagset.Keyword{Name: name}
	switch {
	case v == nil || goja.IsUndefined(v):
		kw.Text, kw.Null = "undefined", true
	case goja.IsNull(v):
		kw.Text, kw.Null = "null", true
	default:
		if _, ok := goja.AssertFunction(v); ok {
			kw.Text, kw.Callable = b.functionName(v), true
			break
		}
		if obj, ok := v.(*goja.Object); ok && (obj.ClassName() == "Array" || obj.ClassName() == "Object") {
			kw.Text = b.json(v)
			break
		}
		kw.Text = v.String()
	}
	return kw
}

func (b *binder) functionName(v goja.Value) string {
	name := v.ToObject(b.vm).Get("name")
	if name == nil || goja.IsUndefined(name) || name.String() == "" {
		return "<anonymous>"
	}
	return name.String()
}

func (b *binder) json(v goja.Value) string {
	if b.stringify != nil {
		out, err := b.stringify(goja.Undefined(), v)
		if err == nil && out != nil && !goja.IsUndefined(out) {
			return out.String()
		}
	}
	return v.String()
}
