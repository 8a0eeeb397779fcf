package query

import (
	"fmt"
	"strings"
)

// Key identifies a cached resource.
//
// The first element is the resource name, followed by identifiers and parameters.
// A Key matches another Key as a prefix element by element.
type Key []string

// NewKey builds a Key from parts. Each part is formatted with fmt.Sprint.
func NewKey(parts ...any) Key {
	k := make(Key, 0, len(parts))
	for _, p := range parts {
		k = append(k, fmt.Sprint(p))
	}
	return k
}

// String returns canonical form of the key. It is unique for each Key.
func (k Key) String() string {
	escaped := make([]string, 0, len(k))
	for _, p := range k {
		escaped = append(escaped, strings.ReplaceAll(strings.ReplaceAll(p, `\`, `\\`), "/", `\/`))
	}
	return strings.Join(escaped, "/")
}

// HasPrefix tells whether prefix is the leading part of k.
//
// Empty prefix matches any Key.
func (k Key) HasPrefix(prefix Key) bool {
	if len(k) < len(prefix) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

// With returns a new Key extending k.
func (k Key) With(parts ...any) Key {
	return append(append(Key{}, k...), NewKey(parts...)...)
}
