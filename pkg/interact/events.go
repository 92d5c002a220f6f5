package interact

// Handle names a resize grip on a selected placement's bounding box.
type Handle string

const (
	HandleNone Handle = ""
	HandleN    Handle = "n"
	HandleS    Handle = "s"
	HandleE    Handle = "e"
	HandleW    Handle = "w"
	HandleNE   Handle = "ne"
	HandleNW   Handle = "nw"
	HandleSE   Handle = "se"
	HandleSW   Handle = "sw"
)

// Keyboard keys the reducer understands. Names follow the DOM KeyboardEvent
// key values so frontends can pass them through untranslated.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyDelete     = "Delete"
	KeyBackspace  = "Backspace"
	KeyEscape     = "Escape"
)

// Event is a pointer or keyboard input fed to Reduce. Pointer coordinates
// are canvas-relative pixels; the reducer converts them to percent space.
type Event interface {
	isEvent()
}

// PointerDown starts a gesture. An empty TargetID means the press landed on
// bare canvas. A non-empty Handle means the press landed on a resize grip of
// the target.
type PointerDown struct {
	TargetID string
	Handle   Handle
	X, Y     float64
}

// PointerMove advances an active drag or resize gesture.
type PointerMove struct {
	X, Y float64
}

// PointerUp ends the active gesture.
type PointerUp struct{}

// KeyDown is a keyboard press. Only handled while idle with a selection.
type KeyDown struct {
	Key   string
	Shift bool
}

func (PointerDown) isEvent() {}
func (PointerMove) isEvent() {}
func (PointerUp) isEvent()   {}
func (KeyDown) isEvent()     {}
