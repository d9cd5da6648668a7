package glfwshell

import "time"

// frameLimiter paces the windows of one Platform. A round starts with the
// first window polled and ends when a window is polled a second time, which
// happens once per Shell.Step. Only the start of a new round sleeps, for
// whatever is left of the interval of the window that starts it.
type frameLimiter struct {
	now   func() time.Time
	sleep func(time.Duration)

	start  time.Time
	polled map[*window]bool
}

func newFrameLimiter() *frameLimiter {
	return &frameLimiter{
		now:    time.Now,
		sleep:  time.Sleep,
		polled: make(map[*window]bool),
	}
}

func (l *frameLimiter) wait(w *window, interval time.Duration) {
	if l.polled[w] {
		if interval > 0 {
			if d := interval - l.now().Sub(l.start); d > 0 {
				l.sleep(d)
			}
		}
		clear(l.polled)
	}
	if len(l.polled) == 0 {
		l.start = l.now()
	}
	l.polled[w] = true
}

// forget drops a destroyed window from the current round.
func (l *frameLimiter) forget(w *window) {
	delete(l.polled, w)
}
