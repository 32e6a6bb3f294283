// Package output renders command results for devconf.
//
// Supported formats:
//
//   - table: aligned KEY/VALUE columns (text/tabwriter)
//   - json: indented JSON
//   - yaml: YAML (gopkg.in/yaml.v3)
//
// Unknown format names fall back to table.
package output
