// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It merges
// flags, environment variables and the optional configuration file into the
// application's internal configuration.
package cli
