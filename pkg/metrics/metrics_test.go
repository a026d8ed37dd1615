package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/namepulse/pkg/metrics"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(metrics.WithPrometheusRegistry(reg))

		Convey("Then construction registers the metric families", func() {
			So(m, ShouldNotBeNil)
			families, err := reg.Gather()
			So(err, ShouldBeNil)
			// Families appear on first observation; construction must not fail.
			So(families, ShouldNotBeNil)
		})
	})

	Convey("Given the global recorders", t, func() {
		Convey("Then recording never panics", func() {
			So(func() {
				metrics.RecordReportGenerated(12.5)
				metrics.RecordAnalyzerDuration("cohort", 1.5)
				metrics.SetSnapshotScale(100, 40)
				metrics.RecordHTTPRequest("report", "GET", "200")
				metrics.RecordHTTPRequestDuration("report", "GET", "200", 3.5)
			}, ShouldNotPanic)
		})

		Convey("Then the custom registry gathers them", func() {
			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)
			names := make(map[string]bool)
			for _, f := range families {
				names[f.GetName()] = true
			}
			So(names["namepulse_engine_reports_generated_total"], ShouldBeTrue)
			So(names["namepulse_engine_http_requests_total"], ShouldBeTrue)
		})
	})
}
