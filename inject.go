package sapling

// inject queues fn to run at the start of a later Update. Each queued
// function consumes one poll.
func (w *HeadlessWindow) inject(fn func(*HeadlessWindow)) {
	w.queue = append(w.queue, fn)
}

// Pending returns the number of injections not yet applied.
func (w *HeadlessWindow) Pending() int {
	return len(w.queue)
}

// InjectMove queues a cursor move to (x, y). Buttons keep their state, so a
// move between InjectPress and InjectRelease is a drag.
func (w *HeadlessWindow) InjectMove(x, y float64) {
	w.inject(func(w *HeadlessWindow) {
		w.mouseX, w.mouseY, w.mouseIn = x, y, true
	})
}

// InjectLeave queues the cursor leaving the window.
func (w *HeadlessWindow) InjectLeave() {
	w.inject(func(w *HeadlessWindow) { w.mouseIn = false })
}

// setButton ignores buttons the window does not track.
func (w *HeadlessWindow) setButton(b MouseButton, down bool) {
	if int(b) < len(w.buttons) {
		w.buttons[b] = down
	}
}

// InjectPress queues pressing b with the cursor at (x, y).
func (w *HeadlessWindow) InjectPress(x, y float64, b MouseButton) {
	w.inject(func(w *HeadlessWindow) {
		w.mouseX, w.mouseY, w.mouseIn = x, y, true
		w.setButton(b, true)
	})
}

// InjectRelease queues releasing b with the cursor at (x, y).
func (w *HeadlessWindow) InjectRelease(x, y float64, b MouseButton) {
	w.inject(func(w *HeadlessWindow) {
		w.mouseX, w.mouseY, w.mouseIn = x, y, true
		w.setButton(b, false)
	})
}

// InjectClick queues a left press followed by a release at the same point.
// Consumes two polls.
func (w *HeadlessWindow) InjectClick(x, y float64) {
	w.InjectPress(x, y, MouseButtonLeft)
	w.InjectRelease(x, y, MouseButtonLeft)
}

// InjectDrag queues a left-button drag: press at (fromX, fromY), frames-2
// linearly interpolated moves, and release at (toX, toY). The sequence
// consumes frames polls, at least 2.
func (w *HeadlessWindow) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	w.InjectPress(fromX, fromY, MouseButtonLeft)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		w.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	w.InjectRelease(toX, toY, MouseButtonLeft)
}

// InjectScroll queues one scroll wheel delta.
func (w *HeadlessWindow) InjectScroll(dx, dy float64) {
	w.inject(func(w *HeadlessWindow) {
		w.scrollX, w.scrollY, w.scrolled = dx, dy, true
	})
}

// InjectKey queues a press of c and its release on the following poll.
func (w *HeadlessWindow) InjectKey(c ScanCode) {
	w.inject(func(w *HeadlessWindow) { w.pressed[c] = true })
	w.inject(func(w *HeadlessWindow) { w.released[c] = true })
}

// InjectText queues character input of every rune in s within one poll.
func (w *HeadlessWindow) InjectText(s string) {
	w.inject(func(w *HeadlessWindow) {
		if w.onChar == nil {
			return
		}
		for _, r := range s {
			w.onChar(r)
		}
	})
}

// InjectResize queues a change of the window size.
func (w *HeadlessWindow) InjectResize(width, height int) {
	w.inject(func(w *HeadlessWindow) { w.width, w.height = width, height })
}

// InjectFocus queues the window gaining or losing focus.
func (w *HeadlessWindow) InjectFocus(active bool) {
	w.inject(func(w *HeadlessWindow) { w.active = active })
}

// InjectClose queues the user closing the window.
func (w *HeadlessWindow) InjectClose() {
	w.inject(func(w *HeadlessWindow) { w.open = false })
}
