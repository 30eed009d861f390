package flagset

import (
	"fmt"
	"strconv"
)

// value is the pflag.Value behind every registered option. It keeps the
// declared default as text and converts parsed input according to the
// declared type.
type value struct {
	kind    string
	slice   bool
	text    string
	changed bool
}

func newValue(kw map[string]Keyword) *value {
	v := &value{kind: "string"}
	if typ, ok := present(kw, "type"); ok {
		if kind, builtin := builtinTypes[typ.Text]; builtin {
			v.kind = kind
		}
	}
	switch text(kw, "action") {
	case "store_true", "store_false", "help", "version":
		v.kind = "bool"
	case "count":
		v.kind = "int"
	case "append", "extend", "append_const":
		v.slice = true
	}
	switch text(kw, "nargs") {
	case "*", "+":
		v.slice = true
	default:
		if n, err := strconv.Atoi(text(kw, "nargs")); err == nil && n > 1 {
			v.slice = true
		}
	}

	switch {
	case has(kw, "default"):
		v.text = text(kw, "default")
	case text(kw, "action") == "store_true":
		v.text = "false"
	case text(kw, "action") == "store_false":
		v.text = "true"
	}
	return v
}

func (v *value) String() string { return v.text }

func (v *value) Type() string {
	if v.slice {
		return v.kind + "Slice"
	}
	return v.kind
}

func (v *value) Set(s string) error {
	var err error
	switch v.kind {
	case "int":
		if s != "+1" {
			_, err = strconv.Atoi(s)
		}
	case "float64":
		_, err = strconv.ParseFloat(s, 64)
	case "bool":
		_, err = strconv.ParseBool(s)
	}
	if err != nil {
		return fmt.Errorf("invalid %s value: %q", v.kind, s)
	}
	if v.slice && v.changed {
		v.text += "," + s
	} else {
		v.text = s
	}
	v.changed = true
	return nil
}
