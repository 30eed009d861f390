// Package unit loads the pipeline's declaration units into an embedded
// JavaScript runtime.
//
// A Registry owns one goja.Runtime and every unit evaluated in it. The Loader
// walks the fixed source layout under a root directory:
//
//	opendm/__init__.js  registered as "opendm"   (optional)
//	opendm/context.js   registered as "context"  (optional)
//	opendm/config.js    registered as "config"   (required)
//
// Units are evaluated in that order inside a CommonJS-style wrapper, so a unit
// publishes its entry points on exports and reaches its siblings through
// require. require resolves registered names first, then paths relative to the
// requiring unit, then paths under the root; units found on disk are loaded
// once and registered under their slash path (for example "opendm/log").
//
// The Registry is scoped to one run. Nothing is unloaded; a Registry is
// dropped as a whole.
package unit
