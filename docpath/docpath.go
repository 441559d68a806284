package docpath

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Value is an optional JSON value.
type Value struct {
	v  any
	ok bool
}

// Absent is the empty Value.
var Absent = Value{}

// Of wraps an already decoded JSON value (as produced by encoding/json into
// an any) as a present Value. A JSON null is present; use IsNull to check.
func Of(v any) Value {
	return Value{v: v, ok: true}
}

// Parse decodes data into a Value. Numbers are kept as json.Number so no
// precision is lost. Trailing data after the first JSON value is an error.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Absent, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Absent, fmt.Errorf("unexpected data after top-level JSON value")
	}
	return Of(v), nil
}

// Exists reports whether the value is present.
func (v Value) Exists() bool { return v.ok }

// IsNull reports whether the value is present and JSON null.
func (v Value) IsNull() bool { return v.ok && v.v == nil }

// Raw returns the underlying decoded value and whether it is present.
func (v Value) Raw() (any, bool) { return v.v, v.ok }

// Key steps into an object member.
func (v Value) Key(name string) Value {
	obj, ok := v.v.(map[string]any)
	if !v.ok || !ok {
		return Absent
	}
	child, ok := obj[name]
	if !ok {
		return Absent
	}
	return Of(child)
}

// Index steps into an array element.
func (v Value) Index(i int) Value {
	arr, ok := v.v.([]any)
	if !v.ok || !ok || i < 0 || i >= len(arr) {
		return Absent
	}
	return Of(arr[i])
}

// String returns the value as a string if it is a present JSON string.
func (v Value) String() (string, bool) {
	s, ok := v.v.(string)
	if !v.ok || !ok {
		return "", false
	}
	return s, true
}

// Len returns the number of elements of an array or members of an object.
func (v Value) Len() (int, bool) {
	switch t := v.v.(type) {
	case []any:
		return len(t), v.ok
	case map[string]any:
		return len(t), v.ok
	default:
		return 0, false
	}
}

// Step is one hop of a path: an object key or an array index.
type Step struct {
	key   string
	index int
	isIdx bool
}

// K returns a key step.
func K(name string) Step { return Step{key: name} }

// I returns an index step.
func I(i int) Step { return Step{index: i, isIdx: true} }

func (s Step) String() string {
	if s.isIdx {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.key
}

// Path applies steps left to right, stopping at the first absence.
func (v Value) Path(steps ...Step) Value {
	cur := v
	for _, s := range steps {
		if !cur.ok {
			return Absent
		}
		if s.isIdx {
			cur = cur.Index(s.index)
		} else {
			cur = cur.Key(s.key)
		}
	}
	return cur
}

// Trace applies steps like Path and additionally reports how many steps
// succeeded before the first absence. It is meant for diagnostics.
func (v Value) Trace(steps ...Step) (Value, int) {
	cur := v
	for i, s := range steps {
		next := cur.Path(s)
		if !next.ok {
			return Absent, i
		}
		cur = next
	}
	return cur, len(steps)
}

// FormatPath renders steps as a dotted path, e.g. "results.channels[0]".
func FormatPath(steps ...Step) string {
	var b strings.Builder
	for i, s := range steps {
		if i > 0 && !s.isIdx {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
