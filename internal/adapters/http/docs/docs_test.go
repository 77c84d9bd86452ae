package docs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cfnext/process-service/internal/adapters/http/docs"
	"github.com/smartystreets/goconvey/convey"
)

func TestRegister(t *testing.T) {
	convey.Convey("Given a mux with docs routes registered", t, func() {
		mux := http.NewServeMux()
		docs.Register(context.Background(), mux)

		convey.Convey("Then /docs serves the ReDoc page", func() {
			req := httptest.NewRequest("GET", "/docs", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Header().Get("Content-Type"), convey.ShouldContainSubstring, "text/html")
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "redoc")
		})

		convey.Convey("Then /openapi.yaml serves the embedded spec", func() {
			req := httptest.NewRequest("GET", "/openapi.yaml", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "openapi: 3.0.3")
			convey.So(strings.Contains(w.Body.String(), "/process"), convey.ShouldBeTrue)
		})
	})

	convey.Convey("Registering on a nil mux panics", t, func() {
		convey.So(func() { docs.Register(context.Background(), nil) }, convey.ShouldPanic)
	})
}
