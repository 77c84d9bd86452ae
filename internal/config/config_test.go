package config_test

import (
	"testing"

	"github.com/cfnext/process-service/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.ServiceSecret, convey.ShouldEqual, "dev-secret")
			convey.So(cfg.MaxBodyBytes, convey.ShouldEqual, int64(1<<20))
		})
	})
}
