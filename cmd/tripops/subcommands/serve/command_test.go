package serve_test

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hitrip/tripops/cmd/tripops/config/profiles"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/internal/commandline"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/serve"
	testctx "github.com/hitrip/tripops/internal/testutils/context"
)

type syncBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

func TestTask(t *testing.T) {
	t.Run("it serves until the profile store is updated", func(t *testing.T) {
		ctx, cancel := testctx.WithTest(context.Background(), t)
		defer cancel()

		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}))
		defer backend.Close()

		dir := t.TempDir()
		store := filepath.Join(dir, "profile")
		if err := (profiles.ProfileStore{
			"test": &profiles.Profile{ApiRoot: backend.URL, Locale: "en"},
		}).Save(store); err != nil {
			t.Fatal(err)
		}
		cf := common.CommonFlags{Profile: "test", ProfileStore: store, Env: filepath.Join(dir, ".env")}

		logs := new(syncBuffer)
		done := make(chan error, 1)
		go func() {
			done <- serve.Task(
				ctx, log.New(logs, "", 0), cf,
				commandline.MockCommandline[serve.Flags]{
					Fullname_: "tripops serve",
					Stdout_:   new(strings.Builder),
					Stderr_:   new(strings.Builder),
					Flags_:    serve.Flags{Addr: "127.0.0.1:0", Loglevel: "off"},
				},
				nil,
			)
		}()

		updated := false
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case err := <-done:
				if err != nil {
					t.Fatalf("unexpected error: %v\n%s", err, logs.String())
				}
				if !updated {
					t.Fatalf("stopped before the profile store is updated:\n%s", logs.String())
				}
				if !strings.Contains(logs.String(), "quit to restart dashboard") {
					t.Errorf("unexpected logs:\n%s", logs.String())
				}
				return
			case <-ctx.Done():
				t.Fatalf("dashboard does not stop:\n%s", logs.String())
			case <-ticker.C:
				if updated || !strings.Contains(logs.String(), "dashboard is serving") {
					continue
				}
				f, err := os.OpenFile(store, os.O_APPEND|os.O_WRONLY, 0)
				if err != nil {
					t.Fatal(err)
				}
				f.WriteString("\n")
				f.Close()
				updated = true
			}
		}
	})
}
