package formatter

import (
	"fmt"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

// Spinner animates a braille spinner with a dim message on the current
// terminal line. Used only by the piped/non-TUI chat loop; the TUI has its
// own bubbles spinner.
type Spinner struct {
	message  string
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSpinner creates a spinner with the given message.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the animation. Call Stop to end it and clear the line.
func (s *Spinner) Start() {
	go s.loop()
}

func (s *Spinner) loop() {
	defer close(s.done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.stop:
			fmt.Print("\r\033[K")
			return
		case <-ticker.C:
			glyph := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Printf("\r  %s %s", StyleBlue.Render(glyph), Dim(s.message))
		}
	}
}

// Stop ends the animation and blocks until the line is cleared. Safe to
// call more than once.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// StartSpinner creates and starts a spinner, returning its stop function.
func StartSpinner(message string) func() {
	s := NewSpinner(message)
	s.Start()
	return s.Stop
}
