package logger

import "sync"

// Event is a single log line recorded by Capture.
type Event struct {
	Level   string
	Message string
	Fields  []Field
}

// Capture records structured log events in memory so tests can assert on
// them instead of scraping console output.
type Capture struct {
	mu     *sync.Mutex
	with   []Field
	events *[]Event
}

var _ Logger = (*Capture)(nil)

// NewCapture returns an empty capturing logger.
func NewCapture() *Capture {
	events := make([]Event, 0, 8)
	return &Capture{mu: &sync.Mutex{}, events: &events}
}

// Events returns a copy of everything recorded so far.
func (c *Capture) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), *c.events...)
}

// EventsAt returns recorded events matching the given level.
func (c *Capture) EventsAt(level string) []Event {
	var out []Event
	for _, ev := range c.Events() {
		if ev.Level == level {
			out = append(out, ev)
		}
	}
	return out
}

// With returns a logger sharing the same event sink with extra bound fields.
func (c *Capture) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return c
	}
	return &Capture{
		mu:     c.mu,
		with:   append(append([]Field(nil), c.with...), fields...),
		events: c.events,
	}
}

func (c *Capture) Debug(msg string, fields ...Field) { c.record("debug", msg, fields) }
func (c *Capture) Info(msg string, fields ...Field)  { c.record("info", msg, fields) }
func (c *Capture) Warn(msg string, fields ...Field)  { c.record("warn", msg, fields) }
func (c *Capture) Error(msg string, fields ...Field) { c.record("error", msg, fields) }

func (c *Capture) record(level, msg string, fields []Field) {
	c.mu.Lock()
	defer c.mu.Unlock()
	*c.events = append(*c.events, Event{
		Level:   level,
		Message: msg,
		Fields:  append(append([]Field(nil), c.with...), fields...),
	})
}
