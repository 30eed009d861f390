// Package output turns an option table into the serialized result and
// delivers it to its destination.
//
// The payload is a single JSON object mapping each option identifier to an
// object of attribute name to string value. It is written to the standard
// stream and, when a destination path is configured, to that file as well.
// The file is replaced atomically, so readers never observe a partial result.
package output
