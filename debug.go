package spiraltree

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and particle counts.
// Only populated when Show.debug is true.
type frameStats struct {
	growthTime  time.Duration
	physicsTime time.Duration
	composeTime time.Duration
	drawTime    time.Duration
	pushed      int
	inFlight    int
}

// logf writes a prefixed line to stderr.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[spiraltree] "+format+"\n", args...)
}

// debugLog prints timing and particle stats to stderr.
func (s *Show) debugLog() {
	if !s.debug {
		return
	}
	st := s.stats
	total := st.growthTime + st.physicsTime + st.composeTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[spiraltree] frame %d | growth: %v | physics: %v | compose: %v | total: %v\n",
		s.frame, st.growthTime, st.physicsTime, st.composeTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[spiraltree] state: %s | in flight: %d | pushed: %d | last draw: %v\n",
		s.state, st.inFlight, st.pushed, st.drawTime)
}

// recordDrawTime stores the renderer's last frame time for the next log line.
func (s *Show) recordDrawTime(d time.Duration) {
	if s.debug {
		s.stats.drawTime = d
	}
}
