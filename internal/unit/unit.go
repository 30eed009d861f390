package unit

import "github.com/dop251/goja"

// Unit is one evaluated declaration unit.
type Unit struct {
	Name string
	Path string

	module *goja.Object
	reg    *Registry
}

// Exports returns the unit's current module.exports object.
func (u *Unit) Exports() *goja.Object {
	exports := u.module.Get("exports")
	if exports == nil || goja.IsUndefined(exports) || goja.IsNull(exports) {
		exports = u.reg.vm.NewObject()
		_ = u.module.Set("exports", exports)
	}
	return exports.ToObject(u.reg.vm)
}

// Has reports whether the unit exposes attr, whatever its value.
func (u *Unit) Has(attr string) bool {
	return u.Exports().Get(attr) != nil
}

// Get returns the value of attr, or nil when the unit does not expose it.
func (u *Unit) Get(attr string) goja.Value {
	return u.Exports().Get(attr)
}

// Set assigns attr on the unit's exports.
func (u *Unit) Set(attr string, value any) error {
	return u.Exports().Set(attr, value)
}

// Runtime returns the runtime the unit was evaluated in.
func (u *Unit) Runtime() *goja.Runtime {
	return u.reg.vm
}
