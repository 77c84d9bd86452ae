package service_test

import (
	"context"
	"testing"

	app "github.com/cfnext/process-service/internal/app"
	"github.com/cfnext/process-service/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

type recordingLogger struct {
	infos []string
}

func (r *recordingLogger) Debug(ctx context.Context, msg string, fields ...logger.Field) {}
func (r *recordingLogger) Info(ctx context.Context, msg string, fields ...logger.Field) {
	r.infos = append(r.infos, msg)
}
func (r *recordingLogger) Warn(ctx context.Context, msg string, fields ...logger.Field)  {}
func (r *recordingLogger) Error(ctx context.Context, msg string, fields ...logger.Field) {}
func (r *recordingLogger) Named(name string) logger.Logger                               { return r }

func TestService_Process(t *testing.T) {
	convey.Convey("Given a service with a recording logger", t, func() {
		rec := &recordingLogger{}
		svc := app.New(app.WithLogger(rec))
		ctx := context.Background()

		convey.Convey("When processing data with options", func() {
			res := svc.Process(ctx, "hello", map[string]any{"lang": "en"})

			convey.Convey("Then the result is the uppercased input", func() {
				convey.So(res.Output, convey.ShouldEqual, "HELLO")
			})

			convey.Convey("Then metadata holds lengths and options", func() {
				convey.So(res.Metadata["original_length"], convey.ShouldEqual, 5)
				convey.So(res.Metadata["processed_length"], convey.ShouldEqual, 5)
				convey.So(res.Metadata["lang"], convey.ShouldEqual, "en")
			})

			convey.Convey("Then one log line was emitted", func() {
				convey.So(len(rec.infos), convey.ShouldEqual, 1)
				convey.So(rec.infos[0], convey.ShouldEqual, "processing request")
			})
		})

		convey.Convey("When processing twice with identical input", func() {
			a := svc.Process(ctx, "Same", map[string]any{"n": 1})
			b := svc.Process(ctx, "Same", map[string]any{"n": 1})

			convey.Convey("Then results are identical", func() {
				convey.So(a.Output, convey.ShouldEqual, b.Output)
				convey.So(a.Metadata, convey.ShouldResemble, b.Metadata)
			})
		})
	})
}
