package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/yndnr/devconf/internal/core/domain"
	"github.com/yndnr/devconf/internal/infra/confloader"
)

// Encode renders rec as KEY=value lines in the variant's key order.
func Encode(rec *domain.Record, variant domain.Variant) ([]byte, error) {
	l := confloader.NewLoader(confloader.WithParser(confloader.Dotenv(variant.Keys()...)))
	if err := l.LoadMap(rec.Map(variant)); err != nil {
		return nil, err
	}
	return l.Marshal()
}

// Save overwrites path with rec. An empty path means DefaultFile.
func Save(rec *domain.Record, variant domain.Variant, path string) error {
	if path == "" {
		path = DefaultFile
	}

	data, err := Encode(rec, variant)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, FileMode); err != nil {
		return domain.ErrWriteFailed.WithDetails(path).Wrap(err)
	}
	return nil
}

// Load reads path back into a Record. An empty path means DefaultFile.
// Keys are case-sensitive. Keys outside the model, including differently
// cased ones, are returned in Record.Extra; absent keys stay zero.
func Load(path string) (*domain.Record, error) {
	if path == "" {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrFileNotFound.WithDetails(path)
		}
		return nil, domain.ErrReadFailed.WithDetails(path).Wrap(err)
	}

	l := confloader.NewLoader(confloader.WithConfigFile(path))
	rec := &domain.Record{}
	if err := l.Load(rec); err != nil {
		var lineErr *confloader.LineError
		switch {
		case errors.As(err, &lineErr):
			return nil, domain.ErrMalformedLine.
				WithDetails(fmt.Sprintf("%s:%d: %q", path, lineErr.Line, lineErr.Text))
		case errors.Is(err, confloader.ErrDecode):
			return nil, domain.ErrInvalidPort.
				WithDetails(fmt.Sprintf("%s: %q", path, l.GetString(domain.KeyRemotePort))).
				Wrap(err)
		default:
			return nil, domain.ErrReadFailed.WithDetails(path).Wrap(err)
		}
	}

	for _, k := range l.Keys() {
		if domain.IsKnownKey(k) {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]string)
		}
		rec.Extra[k] = l.GetString(k)
	}

	return rec, nil
}

// ExtraKeys returns rec's unknown keys in sorted order.
func ExtraKeys(rec *domain.Record) []string {
	keys := make([]string, 0, len(rec.Extra))
	for k := range rec.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
