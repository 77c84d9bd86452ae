package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/cfnext/process-service/internal/adapters/http/api"
	"github.com/cfnext/process-service/internal/adapters/http/docs"
	app "github.com/cfnext/process-service/internal/app"
	"github.com/cfnext/process-service/internal/config"
	"github.com/cfnext/process-service/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainWiring(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)

		convey.Convey("When loading configuration from the environment", func() {
			_ = os.Setenv("PROCSVC_ADDR", ":8080")
			_ = os.Setenv("SERVICE_SECRET", "test-secret")
			defer func() {
				_ = os.Unsetenv("PROCSVC_ADDR")
				_ = os.Unsetenv("SERVICE_SECRET")
			}()

			cfg, err := config.Load(context.Background())

			convey.Convey("Then configuration is loadable", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ServiceSecret, convey.ShouldEqual, "test-secret")
			})
		})

		convey.Convey("When wiring routes the way main does", func() {
			ctx := context.Background()
			svc := app.New(app.WithLogger(logger.Get()))
			mux := http.NewServeMux()
			docs.Register(ctx, mux)
			api.NewServer(svc, "test-secret", 1<<20).Register(ctx, mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           api.RequestID(mux, logger.Get()),
				ReadHeaderTimeout: 5 * time.Second,
			}

			convey.Convey("Then the server is constructible", func() {
				convey.So(srv, convey.ShouldNotBeNil)
				convey.So(srv.Handler, convey.ShouldNotBeNil)
			})
		})
	})
}
