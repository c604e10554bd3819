package notify

import (
	"log"
	"sync"
)

// Notifier is the transient-notification surface (the toast analogue).
// Implementations must be safe for use from a single goroutine at a time.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type logNotifier struct{}

// NewLog returns a Notifier that writes to the standard logger.
func NewLog() Notifier {
	return logNotifier{}
}

func (logNotifier) Success(message string) {
	log.Printf("✅ %s", message)
}

func (logNotifier) Error(message string) {
	log.Printf("❌ %s", message)
}

// Recorder captures notifications for assertions.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, message)
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, message)
}
