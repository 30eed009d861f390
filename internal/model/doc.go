// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the option metadata captured from a declaration routine.
//
// # Core Concepts
//
//   - Option: one declared option, keyed by the first name passed to
//     add_argument, with every keyword argument reduced to its text form.
//
//   - Attributes: the keyword text of one Option, in the order the keywords
//     were written.
//
//   - Table: every Option of a run, keyed by identifier. A re-declared
//     identifier replaces the earlier Option in place, so the table never
//     grows with duplicates and keeps first-declaration order.
//
// Values are always strings. Downstream consumers render and validate
// option forms from text, and a number default and a string default with the
// same spelling are indistinguishable after capture.
//
// Serialization is deterministic. The JSON form of a Table follows its
// iteration order and does not escape HTML characters, so the same declaration
// units always produce the same bytes.
package model
