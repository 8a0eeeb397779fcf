// Package flag provides flag.Value types for optional and repeatable command line flags.
package flag

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Argslice []string

func (s *Argslice) String() string {
	return fmt.Sprintf("%v", *s)
}

func (s *Argslice) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Ints is a repeatable flag of integers. Comma separated values are also accepted.
type Ints []int

func (s *Ints) String() string {
	if s == nil || len(*s) == 0 {
		return ""
	}
	strs := make([]string, 0, len(*s))
	for _, i := range *s {
		strs = append(strs, strconv.Itoa(i))
	}
	return strings.Join(strs, ",")
}

func (s *Ints) Set(v string) error {
	for _, f := range strings.Split(v, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		i, err := strconv.Atoi(f)
		if err != nil {
			return err
		}
		*s = append(*s, i)
	}
	return nil
}

// OptionalString distinguishes "not passed" from "passed as empty".
type OptionalString struct {
	v     string
	isSet bool
}

func (t *OptionalString) String() string {
	if t == nil || !t.isSet {
		return ""
	}
	return t.v
}

func (t *OptionalString) Set(v string) error {
	t.v = v
	t.isSet = true
	return nil
}

func (t *OptionalString) Value() *string {
	if t == nil || !t.isSet {
		return nil
	}
	v := t.v
	return &v
}

type OptionalInt struct {
	v     int
	isSet bool
}

func (t *OptionalInt) String() string {
	if t == nil || !t.isSet {
		return ""
	}
	return strconv.Itoa(t.v)
}

func (t *OptionalInt) Set(v string) error {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	t.v = i
	t.isSet = true
	return nil
}

func (t *OptionalInt) Value() *int {
	if t == nil || !t.isSet {
		return nil
	}
	v := t.v
	return &v
}

// DateFormat is the layout of calendar dates exchanged with the backend.
const DateFormat = "2006-01-02"

// OptionalDate is a calendar date flag in the form YYYY-MM-DD.
type OptionalDate struct {
	v     string
	isSet bool
}

func (t *OptionalDate) String() string {
	if t == nil || !t.isSet {
		return ""
	}
	return t.v
}

func (t *OptionalDate) Set(v string) error {
	d, err := time.Parse(DateFormat, strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("date should be YYYY-MM-DD: %w", err)
	}
	t.v = d.Format(DateFormat)
	t.isSet = true
	return nil
}

func (t *OptionalDate) Value() *string {
	if t == nil || !t.isSet {
		return nil
	}
	v := t.v
	return &v
}
