package pipeline

import (
	"log/slog"
	"strings"

	"github.com/rcrowley/go-metrics"
)

// Run counters, registered on the default registry so an embedding process
// can publish them alongside its own.
var (
	linesTotal     = metrics.GetOrRegisterCounter("zsort.lines.total", nil)
	linesDirect    = metrics.GetOrRegisterCounter("zsort.lines.direct", nil)
	linesBuffered  = metrics.GetOrRegisterCounter("zsort.lines.buffered", nil)
	wordsSubmitted = metrics.GetOrRegisterCounter("zsort.words.submitted", nil)
	runsResolved   = metrics.GetOrRegisterCounter("zsort.runs.resolved", nil)
)

// dumpCounters logs every zsort counter on the default registry at debug
// level. Counts are cumulative per process, not per run.
func dumpCounters(log *slog.Logger) {
	metrics.DefaultRegistry.Each(func(name string, m interface{}) {
		if !strings.HasPrefix(name, "zsort.") {
			return
		}
		if c, ok := m.(metrics.Counter); ok {
			log.Debug("counter", "name", name, "count", c.Count())
		}
	})
}
