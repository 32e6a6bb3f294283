package confloader

// mapProvider is a koanf provider serving an in-memory map of KEY=value
// pairs. koanf calls Read() when no parser is given.
type mapProvider map[string]any

// ReadBytes renders the map as KEY=value lines, sorted by key.
func (m mapProvider) ReadBytes() ([]byte, error) {
	return Dotenv().Marshal(m)
}

// Read returns the configuration map.
func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
