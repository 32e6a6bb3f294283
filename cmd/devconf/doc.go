// Package main provides the entry point for devconf.
//
// devconf writes the device connection settings of a deployment to a
// KEY=value file (.env in the working directory by default):
//
//	DEVICE=cam01
//	REMOTE_HOST=10.0.0.5
//	REMOTE_PORT=8080
//
// Usage:
//
//	devconf -d cam01 -H 10.0.0.5 -p 8080
//	devconf show -o json
//	devconf show --watch
package main
