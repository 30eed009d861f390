// Package intercept runs a config unit's declaration routine against a
// Recorder and returns the options it declared.
//
// The Recorder is a Sink: the two parser operations a routine uses,
// add_argument and add_mutually_exclusive_group. Every declaration is first
// forwarded to a real flagset.Parser, so declarations the pipeline itself
// would reject still fail, and then captured in a model.Table. A group is a
// fresh Recorder sharing the same table.
//
// Two calling conventions exist across pipeline versions. Units that expose a
// parser attribute (1.0) get the recorder assigned to it before config() is
// called; all other units (2.0 and later) receive it as config({parser: ...}).
// The convention is picked once per run by probing for that attribute.
package intercept
