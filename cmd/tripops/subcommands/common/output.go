package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hitrip/tripops/cmd/tripops/queries"
	"github.com/youta-t/flarc"
)

// Print writes v into w as indented JSON.
func Print(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

// ID reads a positional argument as a resource id.
//
// It returns flarc.ErrUsage when the argument is not a positive integer.
func ID(args map[string][]string, name string) (int, error) {
	vs := args[name]
	if len(vs) == 0 {
		return 0, errors.Join(flarc.ErrUsage, fmt.Errorf("%s is required", name))
	}
	id, ok := queries.ParseID(vs[0])
	if !ok {
		return 0, errors.Join(
			flarc.ErrUsage,
			fmt.Errorf("%w: %s should be a positive integer, but %q", queries.ErrInvalidID, name, vs[0]),
		)
	}
	return id, nil
}

// IDs reads all values of a repeatable positional argument as resource ids.
func IDs(args map[string][]string, name string) ([]int, error) {
	ids := make([]int, 0, len(args[name]))
	for _, v := range args[name] {
		id, ok := queries.ParseID(v)
		if !ok {
			return nil, errors.Join(
				flarc.ErrUsage,
				fmt.Errorf("%w: %s should be a positive integer, but %q", queries.ErrInvalidID, name, v),
			)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
