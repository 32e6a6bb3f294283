package confloader

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrDecode marks a failure to decode loaded values into the target struct.
var ErrDecode = errors.New("confloader: decode config")

// Loader loads configuration from a file or a map and unmarshals it into
// typed structs.
type Loader struct {
	k        *koanf.Koanf
	parser   koanf.Parser
	filePath string
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithConfigFile sets the configuration file path.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithParser sets the parser used to decode files and encode Marshal output.
// Defaults to Dotenv().
func WithParser(p koanf.Parser) Option {
	return func(l *Loader) {
		l.parser = p
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:      koanf.New("."),
		parser: Dotenv(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load reads the configured file (if any) and unmarshals into target.
// Fields are mapped with koanf struct tags.
func (l *Loader) Load(target any) error {
	if l.filePath != "" {
		if err := l.LoadFile(l.filePath); err != nil {
			return err
		}
	}

	return l.Unmarshal(target)
}

// LoadFile loads configuration from a file using the loader's parser.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	if err := l.k.Load(file.Provider(path), l.parser); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}

	return nil
}

// LoadMap loads configuration from a map.
func (l *Loader) LoadMap(data map[string]any) error {
	if err := l.k.Load(mapProvider(data), nil); err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	return nil
}

// Marshal encodes everything loaded so far with the loader's parser.
func (l *Loader) Marshal() ([]byte, error) {
	b, err := l.k.Marshal(l.parser)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return b, nil
}

// Unmarshal unmarshals the loaded configuration into the target struct.
// Keys must equal the koanf tag exactly; "device" does not fill a field
// tagged "DEVICE". Strings are converted to the field type, so "8080"
// fills an int. Failures wrap ErrDecode.
func (l *Loader) Unmarshal(target any) error {
	err := l.k.UnmarshalWithConf("", target, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           target,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			MatchName: func(mapKey, fieldName string) bool {
				return mapKey == fieldName
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// GetString returns a string value from the configuration.
func (l *Loader) GetString(key string) string {
	return l.k.String(key)
}

// Keys returns all configuration keys.
func (l *Loader) Keys() []string {
	return l.k.Keys()
}
