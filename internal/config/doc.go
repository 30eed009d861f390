// Package config reads the optional HCL configuration file.
//
// A configuration file supplies defaults for the command-line settings:
//
//	root      = "/code"
//	output    = lookup(env, "ODM_OPTIONS_TMP_FILE", "")
//	canonical = false
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Expressions may read the process environment through the env map and call
// lookup, coalesce, lower and upper. Flags and environment variables take
// precedence over anything set here.
package config
