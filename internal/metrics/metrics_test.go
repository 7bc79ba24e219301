package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/alexanderramin/hrpulse/internal/llm"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager on a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithRegistry(registry), WithHistogramBuckets([]float64{1}))

		Convey("When LLM calls complete", func() {
			m.OnCallComplete(llm.LLMCallEvent{Task: llm.TaskClassify, LatencyMs: 120, Success: true})
			m.OnCallComplete(llm.LLMCallEvent{Task: llm.TaskClassify, LatencyMs: 50, ErrorCode: "TIMEOUT"})

			Convey("Then calls are counted by status and code", func() {
				So(testutil.ToFloat64(m.llmCalls.WithLabelValues("classify", "ok", "")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.llmCalls.WithLabelValues("classify", "error", "TIMEOUT")), ShouldEqual, 1)
				So(testutil.CollectAndCount(m.llmLatency), ShouldEqual, 1)
			})
		})

		Convey("When fallbacks and queries are recorded", func() {
			m.RecordFallback(llm.TaskFormat, "UNAVAILABLE")
			m.RecordFallback(llm.TaskFormat, "UNAVAILABLE")
			m.RecordQuery("gaps", "keyword")
			m.SetDatasetSize(10)

			Convey("Then the counters reflect them", func() {
				So(testutil.ToFloat64(m.fallbacks.WithLabelValues("format", "UNAVAILABLE")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.queries.WithLabelValues("gaps", "keyword")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.datasetGauge), ShouldEqual, 10)
			})
		})

		Convey("When exporting to a textfile", func() {
			m.RecordQuery("at_risk", "ai")
			path := filepath.Join(t.TempDir(), "hrpulse.prom")
			err := m.WriteTextfile(path)

			Convey("Then the file holds the exposition text", func() {
				So(err, ShouldBeNil)
				data, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(strings.Contains(string(data), `hrpulse_queries_total{intent="at_risk",source="ai"} 1`), ShouldBeTrue)
			})
		})

		Convey("When exporting to an unwritable path", func() {
			err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))

			Convey("Then ErrExportFailed is returned", func() {
				So(errors.Is(err, ErrExportFailed), ShouldBeTrue)
			})
		})
	})
}
