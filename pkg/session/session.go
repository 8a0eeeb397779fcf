// Package session holds the state of the operator using the client: who is logged in,
// and which locale is used.
//
// The State is created at the composition root and passed to what needs it.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hitrip/tripops/pkg/api/types/staff"
)

var ErrUnknownLocale = errors.New("unknown locale")

type Locale string

const (
	Korean  Locale = "ko"
	English Locale = "en"
)

func ParseLocale(s string) (Locale, error) {
	switch l := Locale(s); l {
	case Korean, English:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q (ko or en)", ErrUnknownLocale, s)
	}
}

// Snapshot is a copy of State at a moment.
type Snapshot struct {
	User   *staff.UserDetail `json:"user"`
	Locale Locale            `json:"locale"`
}

func (s Snapshot) LoggedIn() bool {
	return s.User != nil
}

type State struct {
	mu     sync.RWMutex
	user   *staff.UserDetail
	locale Locale
}

// New creates a State with no user.
func New(locale Locale) *State {
	if _, err := ParseLocale(string(locale)); err != nil {
		locale = Korean
	}
	return &State{locale: locale}
}

func (s *State) SetUser(u staff.UserDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// Clear forgets the user. Locale is kept.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

func (s *State) SetLocale(l Locale) error {
	if _, err := ParseLocale(string(l)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = l
	return nil
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Locale: s.locale}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}
