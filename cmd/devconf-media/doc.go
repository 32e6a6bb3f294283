// Package main provides the entry point for devconf-media.
//
// devconf-media is devconf with an additional required media directory,
// written as a fourth MEDIA line.
//
// Usage:
//
//	devconf-media -d cam01 -m /srv/media
package main
