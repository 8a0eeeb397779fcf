package dashboard_test

import (
	"io"
	"log"
	"testing"

	"github.com/hitrip/tripops/cmd/tripops/dashboard"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/rest/mock"
	"github.com/hitrip/tripops/pkg/session"
	"go.uber.org/fx"
)

func TestModule(t *testing.T) {
	t.Run("it is complete with required components", func(t *testing.T) {
		client := mock.New(t)
		err := fx.ValidateApp(
			fx.Provide(
				func() rest.TripClient { return client },
				func() dashboard.Config { return dashboard.Config{Addr: "localhost:0"} },
				func() session.Locale { return session.English },
				func() dashboard.Clock { return clock },
				func() *log.Logger { return log.New(io.Discard, "", 0) },
			),
			dashboard.Module,
		)
		if err != nil {
			t.Fatal(err)
		}
	})

	t.Run("it lacks client without required components", func(t *testing.T) {
		err := fx.ValidateApp(
			fx.Provide(
				func() dashboard.Config { return dashboard.Config{Addr: "localhost:0"} },
				func() session.Locale { return session.English },
				func() dashboard.Clock { return clock },
				func() *log.Logger { return log.New(io.Discard, "", 0) },
			),
			dashboard.Module,
		)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
