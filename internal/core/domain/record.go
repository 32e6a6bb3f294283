package domain

import "strconv"

// File keys, in write order.
const (
	KeyDevice     = "DEVICE"
	KeyRemoteHost = "REMOTE_HOST"
	KeyRemotePort = "REMOTE_PORT"
	KeyMedia      = "MEDIA"
)

// Defaults applied when the corresponding flag is omitted.
const (
	DefaultRemoteHost = "127.0.0.1"
	DefaultRemotePort = 80
)

// Variant selects the key set written by a binary.
type Variant int

const (
	// VariantBasic writes DEVICE, REMOTE_HOST and REMOTE_PORT.
	VariantBasic Variant = iota
	// VariantMedia additionally writes MEDIA.
	VariantMedia
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantMedia:
		return "media"
	default:
		return "basic"
	}
}

// Command returns the binary name for the variant.
func (v Variant) Command() string {
	if v == VariantMedia {
		return "devconf-media"
	}
	return "devconf"
}

// HasMedia reports whether the variant carries the MEDIA key.
func (v Variant) HasMedia() bool {
	return v == VariantMedia
}

// Keys returns the variant's keys in write order.
func (v Variant) Keys() []string {
	keys := []string{KeyDevice, KeyRemoteHost, KeyRemotePort}
	if v.HasMedia() {
		keys = append(keys, KeyMedia)
	}
	return keys
}

// Record is the set of values written to, or read back from, the output file.
type Record struct {
	Device     string `json:"device" yaml:"device" koanf:"DEVICE"`
	RemoteHost string `json:"remote_host" yaml:"remote_host" koanf:"REMOTE_HOST"`
	RemotePort int    `json:"remote_port" yaml:"remote_port" koanf:"REMOTE_PORT"`
	Media      string `json:"media,omitempty" yaml:"media,omitempty" koanf:"MEDIA"`

	// Extra holds keys found on read-back that the model does not know.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty" koanf:"-"`
}

// NewRecord returns a record for device with the default remote endpoint.
func NewRecord(device string) *Record {
	return &Record{
		Device:     device,
		RemoteHost: DefaultRemoteHost,
		RemotePort: DefaultRemotePort,
	}
}

// Value returns the string form of the value stored under key.
// Unknown keys are looked up in Extra.
func (r *Record) Value(key string) string {
	switch key {
	case KeyDevice:
		return r.Device
	case KeyRemoteHost:
		return r.RemoteHost
	case KeyRemotePort:
		return strconv.Itoa(r.RemotePort)
	case KeyMedia:
		return r.Media
	default:
		return r.Extra[key]
	}
}

// Map returns the variant's keys mapped to their string values.
func (r *Record) Map(v Variant) map[string]any {
	keys := v.Keys()
	m := make(map[string]any, len(keys))
	for _, k := range keys {
		m[k] = r.Value(k)
	}
	return m
}

// IsKnownKey reports whether key belongs to the record model.
func IsKnownKey(key string) bool {
	switch key {
	case KeyDevice, KeyRemoteHost, KeyRemotePort, KeyMedia:
		return true
	}
	return false
}
