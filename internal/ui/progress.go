package ui

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

const progressTemplate = `{{ string . "prefix" }} {{ counters . }} {{ bar . }} {{ percent . }} {{ etime . }}`

// Progress shows how many (language, platform) pairs are done
type Progress struct {
	bar *pb.ProgressBar
}

// NewProgress starts a progress bar writing to w. A disabled progress
// accepts calls and draws nothing.
func NewProgress(w io.Writer, total int, enabled bool) *Progress {
	if !enabled || total <= 0 {
		return &Progress{}
	}

	bar := pb.New(total).
		SetTemplateString(progressTemplate).
		SetWriter(w).
		Set("prefix", "Collecting")
	bar.Start()

	return &Progress{bar: bar}
}

// Increment marks one (language, platform) pair as done
func (p *Progress) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

// Finish stops redrawing the bar
func (p *Progress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
