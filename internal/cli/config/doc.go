// Package config reads and writes the device configuration file.
//
//   - spec.go: file name and permission defaults
//   - loader.go: Save (the write path) and Load (read-back)
//
// Save always truncates the target. Nothing is locked; when two processes
// write the same file the last writer wins.
package config
