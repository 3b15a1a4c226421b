package telemetry

import (
	"log"

	"github.com/ironsheep/frame-vision-mcp/internal/pipeline"
)

// LogReporter writes one line per frame to a logger.
type LogReporter struct {
	Logger *log.Logger // nil means the standard logger
}

// ReportFrame implements pipeline.Reporter.
func (l LogReporter) ReportFrame(r pipeline.FrameReport) {
	logf := log.Printf
	if l.Logger != nil {
		logf = l.Logger.Printf
	}
	logf("frame %s: channel=%s target=%v area=%.1f contours=%d took=%s",
		r.FrameID, r.OutputChannel, r.TargetFound, r.MaxContourArea, r.ContourCount, r.Duration)
}
