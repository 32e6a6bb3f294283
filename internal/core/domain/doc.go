// Package domain defines the core domain model for devconf.
//
// The model is a single value object without IO dependencies:
//
//   - Record: the device connection settings destined for the output file
//   - Variant: which key set a binary writes (basic or media)
//   - Errors: coded errors shared by the CLI layers
//
// The key order returned by Variant.Keys is the order in which lines are
// written and is part of the file format.
package domain
