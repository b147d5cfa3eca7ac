package adscene

import (
	"fmt"
	"io"
	"os"
	"time"
)

// diagOut receives diagnostics and debug stats. Defaults to stderr.
var diagOut io.Writer = os.Stderr

// SetDiagnosticOutput redirects diagnostics and debug stats to w. A nil w
// discards them.
func SetDiagnosticOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	diagOut = w
}

// diagf writes one prefixed diagnostic line.
func diagf(format string, args ...any) {
	_, _ = fmt.Fprintf(diagOut, "[adscene] "+format+"\n", args...)
}

// debugStats holds per-frame timing and planner metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	pathSteps   int
	pathTime    time.Duration
	updateTime  time.Duration
	displayTime time.Duration
}

// debugLog prints timing stats to the diagnostic output.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.pathTime + stats.updateTime + stats.displayTime
	diagf("path: %v (%d steps) | update: %v | display: %v | total: %v",
		stats.pathTime, stats.pathSteps, stats.updateTime, stats.displayTime, total)
	ox, oy := s.Offset()
	tx, ty := s.TargetOffset()
	diagf("scroll: %d,%d -> %d,%d | ready: %v | planner busy: %v",
		ox, oy, tx, ty, s.ready, s.planner.Busy())
}

// debugCheckRegions warns about regions that can never contain a point.
func debugCheckRegions(l *Layer) {
	for _, n := range l.nodes {
		rn, ok := n.(*RegionNode)
		if !ok {
			continue
		}
		if len(rn.Region.points) < 3 {
			diagf("warning: region %q on layer %q has %d points and never matches",
				rn.Region.Name, l.Name, len(rn.Region.points))
		}
	}
}
