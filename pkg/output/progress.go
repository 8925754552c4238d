package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"
)

// progressTemplate renders "Comparing [=====>    ] 42 / 100  42%  ETA 3s"
const progressTemplate = `{{string . "prefix"}} {{bar . "[" "=" ">" " " "]"}} {{counters . }} {{percent . }} {{rtime . "ETA %s"}}`

// ProgressBar reports comparison progress as a terminal progress bar.
// It satisfies match.Reporter.
type ProgressBar struct {
	writer io.Writer

	mu  sync.Mutex
	bar *pb.ProgressBar
}

// NewProgressBar creates a progress bar writing to w (stderr when nil)
func NewProgressBar(w io.Writer) *ProgressBar {
	if w == nil {
		w = os.Stderr
	}
	return &ProgressBar{writer: w}
}

// IsTerminal reports whether w is attached to a terminal
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Phase prints the phase name on its own line
func (p *ProgressBar) Phase(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.writer, name)
}

// Start begins rendering a bar for total candidates
func (p *ProgressBar) Start(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		p.bar.Finish()
	}

	bar := pb.New(total)
	bar.SetWriter(p.writer)
	bar.SetTemplateString(progressTemplate)
	bar.Set("prefix", "Comparing")
	bar.Set(pb.Terminal, IsTerminal(p.writer))
	bar.SetWidth(termWidth(p.writer))
	p.bar = bar.Start()
}

// Update moves the bar to current
func (p *ProgressBar) Update(current, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		return
	}
	if int64(total) != p.bar.Total() {
		p.bar.SetTotal(int64(total))
	}
	p.bar.SetCurrent(int64(current))
}

// Finish stops rendering and leaves the final bar on screen
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		return
	}
	p.bar.Finish()
	p.bar = nil
}

// termWidth returns the terminal width of w, defaulting to 80 columns
// for pipes and redirections
func termWidth(w io.Writer) int {
	if file, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
