package ui

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Spinner animates a loading indicator on stderr while a request is in flight.
// It stays silent when w is not a terminal so piped output is clean.
type Spinner struct {
	w      io.Writer
	frames []string
	msg    string
	active bool
	stop   chan struct{}
	done   chan struct{}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewSpinner creates a spinner writing to os.Stderr.
func NewSpinner(msg string) *Spinner {
	return newSpinner(os.Stderr, msg, isTerminal(os.Stderr))
}

func newSpinner(w io.Writer, msg string, active bool) *Spinner {
	return &Spinner{
		w:      w,
		frames: spinnerFrames,
		msg:    msg,
		active: active,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start begins the spinner animation in a goroutine.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		if !s.active {
			<-s.stop
			return
		}
		for i := 0; ; i++ {
			frame := styleNetwork.Render(s.frames[i%len(s.frames)])
			fmt.Fprintf(s.w, "\r%s  %s", frame, s.msg)
			select {
			case <-s.stop:
				fmt.Fprintf(s.w, "\r%-60s\r", "") // clear line
				return
			case <-time.After(80 * time.Millisecond):
			}
		}
	}()
}

// Stop halts the spinner and waits for it to finish.
func (s *Spinner) Stop() {
	close(s.stop)
	<-s.done
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
