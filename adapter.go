package sapling

// Adapter is the application logic a window drives. The shell calls the
// input methods while draining events and Run when the window is dirty.
// Every call happens on the shell's goroutine.
type Adapter interface {
	Mouse(x, y float64)
	MouseEvent(e MouseEvent)
	Scroll(dx, dy float64)
	KeyEvent(e KeyEvent)
	Resize(width, height float64)
	Active(active bool)
	Run(s Surface)
}
