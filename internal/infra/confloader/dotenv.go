package confloader

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/knadh/koanf/maps"
)

// LineError reports a line that is not KEY=value.
type LineError struct {
	Line int
	Text string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: expected KEY=value, got %q", e.Line, e.Text)
}

// DotenvParser is a koanf.Parser for KEY=value files.
//
// Unmarshal skips blank lines and lines starting with '#', splits every other
// line on the first '=', trims the key and keeps the value verbatim apart from
// a trailing '\r'. Marshal writes one KEY=value line per key: keys listed in
// the order option first, the rest sorted.
type DotenvParser struct {
	order []string
}

// Dotenv returns a parser that writes the given keys first, in that order.
func Dotenv(order ...string) *DotenvParser {
	return &DotenvParser{order: order}
}

// Unmarshal parses KEY=value lines into a flat map of strings.
func (p *DotenvParser) Unmarshal(b []byte) (map[string]any, error) {
	out := make(map[string]any)

	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, &LineError{Line: n, Text: line}
		}
		out[key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Marshal encodes a (possibly nested) map as KEY=value lines.
func (p *DotenvParser) Marshal(m map[string]any) ([]byte, error) {
	flat, _ := maps.Flatten(m, nil, ".")

	var buf bytes.Buffer
	written := make(map[string]bool, len(flat))
	for _, k := range p.order {
		v, ok := flat[k]
		if !ok {
			continue
		}
		writeLine(&buf, k, v)
		written[k] = true
	}

	rest := make([]string, 0, len(flat))
	for k := range flat {
		if !written[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		writeLine(&buf, k, flat[k])
	}

	return buf.Bytes(), nil
}

func writeLine(buf *bytes.Buffer, key string, value any) {
	buf.WriteString(key)
	buf.WriteByte('=')
	if value != nil {
		fmt.Fprint(buf, value)
	}
	buf.WriteByte('\n')
}
