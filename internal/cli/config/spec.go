package config

import "os"

const (
	// DefaultFile is the output file, relative to the working directory.
	DefaultFile = ".env"

	// FileMode is the permission used when the file is created.
	FileMode os.FileMode = 0644
)
