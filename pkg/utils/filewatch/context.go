// Package filewatch ties the lifetime of a context to files on disk.
package filewatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Changed is the cause of a context cancelled by a file change.
type Changed struct {
	Name string
	Op   fsnotify.Op
}

func (c *Changed) Error() string {
	return fmt.Sprintf("%s is updated (%s)", c.Name, c.Op)
}

// AsChanged extracts Changed from the cause of ctx.
func AsChanged(ctx context.Context) (*Changed, bool) {
	c := new(Changed)
	if errors.As(context.Cause(ctx), &c) {
		return c, true
	}
	return nil, false
}

// operations which are considered as a change.
//
// Chmod is not in here; touching permission does not change content.
const changes = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// UntilModifyContext returns a context that is cancelled
// when one of targets is written, created, removed or renamed.
//
// The cause of the cancellation is *Changed.
//
// If it fails to start watching, the returned context and cancel function are nil.
func UntilModifyContext(ctx context.Context, targets ...string) (context.Context, func(), error) {
	if len(targets) == 0 {
		return nil, nil, errors.New("filewatch: no targets")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	for _, f := range targets {
		if err := w.Add(f); err != nil {
			w.Close()
			return nil, nil, fmt.Errorf("filewatch: %s: %w", f, err)
		}
	}

	cctx, cancel := context.WithCancelCause(ctx)
	go func() {
		defer w.Close()
		for {
			select {
			case <-cctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Op&changes == 0 {
					continue
				}
				cancel(&Changed{Name: event.Name, Op: event.Op})
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				cancel(err)
				return
			}
		}
	}()

	return cctx, func() { cancel(nil) }, nil
}
