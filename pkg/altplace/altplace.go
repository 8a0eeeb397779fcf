// Package altplace reads a recommended alternative place out of loosely shaped JSON.
//
// Hints of alternative places come from an AI pipeline and have no fixed shape:
// they can be an object, an array of candidates, JSON encoded in a string,
// or an object nested in another. Normalize tries a fixed list of shapes in order
// and tells which, if any, matched.
package altplace

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxDepth bounds how deep Normalize looks into nested values.
const MaxDepth = 4

// Place is a normalized alternative place.
//
// It is marshalled with canonical keys, so normalizing its JSON again gives the same Place.
type Place struct {
	Name     string `json:"place_name"`
	Address  string `json:"address,omitempty"`
	Distance string `json:"distance,omitempty"`
	ETA      string `json:"eta,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Result is Recognized or Unrecognized.
type Result interface {
	result()
}

type Recognized struct {
	Place Place
}

type Unrecognized struct {
	Reason string
}

func (Recognized) result()   {}
func (Unrecognized) result() {}

// Recognize returns the place if r is Recognized.
func Recognize(r Result) (Place, bool) {
	rec, ok := r.(Recognized)
	return rec.Place, ok
}

var (
	nameKeys    = []string{"place_name", "name", "alternative_place", "alternative_name", "title"}
	addressKeys = []string{"address"}
	reasonKeys  = []string{"reason"}
)

// a key alias and how to format its value.
type alias struct {
	key  string
	unit string
}

var (
	distanceKeys = []alias{{"distance", ""}, {"distance_text", ""}, {"distance_km", "km"}, {"distance_m", "m"}}
	etaKeys      = []alias{{"eta", ""}, {"eta_text", ""}, {"travel_time", ""}, {"duration", ""}, {"eta_minutes", "min"}}
)

// Normalize extracts an alternative place from v.
//
// v may be a Place, JSON (json.RawMessage, []byte or string), or a value
// decoded by encoding/json (map[string]any, []any, ...).
func Normalize(v any) Result {
	return normalize(v, 0)
}

type matcher func(v any, depth int) (Result, bool)

// matchers in priority order. Each returns false when v is not of its shape.
var matchers []matcher

func init() {
	matchers = []matcher{
		matchTyped,
		matchJSONText,
		matchArray,
		matchAliased,
		matchAlternatives,
		matchNested,
	}
}

func normalize(v any, depth int) Result {
	if MaxDepth < depth {
		return Unrecognized{Reason: "too deeply nested"}
	}
	if v == nil {
		return Unrecognized{Reason: "no value"}
	}
	for _, m := range matchers {
		if r, ok := m(v, depth); ok {
			return r
		}
	}
	return Unrecognized{Reason: fmt.Sprintf("unknown shape: %T", v)}
}

func matchTyped(v any, _ int) (Result, bool) {
	var p Place
	switch t := v.(type) {
	case Place:
		p = t
	case *Place:
		if t == nil {
			return Unrecognized{Reason: "no value"}, true
		}
		p = *t
	default:
		return nil, false
	}
	if strings.TrimSpace(p.Name) == "" {
		return Unrecognized{Reason: "place has no name"}, true
	}
	return Recognized{Place: p}, true
}

func matchJSONText(v any, depth int) (Result, bool) {
	var raw []byte
	switch t := v.(type) {
	case json.RawMessage:
		raw = t
	case []byte:
		raw = t
	case string:
		raw = []byte(t)
	default:
		return nil, false
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Unrecognized{Reason: "empty text"}, true
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Unrecognized{Reason: "text is not JSON"}, true
	}
	return normalize(decoded, depth+1), true
}

func matchArray(v any, depth int) (Result, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	for _, item := range items {
		if r, ok := normalize(item, depth+1).(Recognized); ok {
			return r, true
		}
	}
	return Unrecognized{Reason: "no candidate in array"}, true
}

func matchAliased(v any, _ int) (Result, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	name := firstText(obj, nameKeys)
	if name == "" {
		return nil, false
	}
	return Recognized{Place: Place{
		Name:     name,
		Address:  firstText(obj, addressKeys),
		Distance: firstMeasure(obj, distanceKeys),
		ETA:      firstMeasure(obj, etaKeys),
		Reason:   firstText(obj, reasonKeys),
	}}, true
}

func matchAlternatives(v any, depth int) (Result, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	alts, ok := obj["alternatives"]
	if !ok {
		return nil, false
	}
	r := normalize(alts, depth+1)
	if _, ok := r.(Recognized); !ok {
		return nil, false
	}
	return r, true
}

func matchNested(v any, depth int) (Result, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch obj[k].(type) {
		case map[string]any, []any:
		default:
			continue
		}
		if r, ok := normalize(obj[k], depth+1).(Recognized); ok {
			return r, true
		}
	}
	return Unrecognized{Reason: "no known keys in object"}, true
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

func firstText(obj map[string]any, keys []string) string {
	for _, k := range keys {
		if s := text(obj[k]); s != "" {
			return s
		}
	}
	return ""
}

func firstMeasure(obj map[string]any, aliases []alias) string {
	for _, a := range aliases {
		v, ok := obj[a.key]
		if !ok {
			continue
		}
		s := text(v)
		if s == "" {
			continue
		}
		if _, isString := v.(string); a.unit != "" && !isString {
			s += a.unit
		}
		return s
	}
	return ""
}
