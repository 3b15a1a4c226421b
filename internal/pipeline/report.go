package pipeline

import "time"

// FrameReport summarizes one processed frame for telemetry.
type FrameReport struct {
	FrameID        string
	OutputChannel  OutputChannel
	TargetFound    bool
	MaxContourArea float64
	ContourCount   int
	Duration       time.Duration
}

// NewFrameReport builds the report for res, processed in d.
func NewFrameReport(frameID string, res *Result, d time.Duration) FrameReport {
	return FrameReport{
		FrameID:        frameID,
		OutputChannel:  res.OutputChannel,
		TargetFound:    res.TargetFound(),
		MaxContourArea: res.MaxContourArea,
		ContourCount:   res.ContourCount,
		Duration:       d,
	}
}

// Reporter receives a report for every processed frame. Implementations
// must be safe for concurrent use.
type Reporter interface {
	ReportFrame(FrameReport)
}

// Reporters fans a report out to several reporters in order.
type Reporters []Reporter

// ReportFrame implements Reporter.
func (rs Reporters) ReportFrame(r FrameReport) {
	for _, rep := range rs {
		rep.ReportFrame(r)
	}
}
