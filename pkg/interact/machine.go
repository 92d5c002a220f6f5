// Package interact models canvas manipulation as a finite-state machine
// driven by a pure event reducer. The reducer owns no UI state: callers feed
// it pointer and keyboard events plus the current placement list and get
// back the next machine state and placement list. Identical event sequences
// always produce identical geometry.
package interact

import (
	"github.com/creatorlab/canvas/pkg/geom"
	"github.com/creatorlab/canvas/pkg/scene"
)

// Mode is the machine's top-level state.
type Mode string

const (
	ModeIdle     Mode = "idle"
	ModeDragging Mode = "dragging"
	ModeResizing Mode = "resizing"
)

// Options tunes gesture behavior. Zero values are replaced by defaults at
// reduce time, so a zero Options is usable.
type Options struct {
	SnapStep       float64 // grid step for drag snapping, percent
	SnapTolerance  float64 // distance within which 0/50/100 anchors win
	NudgeStep      float64 // arrow-key nudge, percent
	NudgeStepLarge float64 // shift+arrow nudge, percent
	ResizeFactor   float64 // delta multiplier while resizing
	MinSize        float64 // smallest width/height a resize may reach
}

// DefaultOptions returns the standard gesture tuning.
func DefaultOptions() Options {
	return Options{
		SnapStep:       5,
		SnapTolerance:  3,
		NudgeStep:      5,
		NudgeStepLarge: 10,
		ResizeFactor:   1.5,
		MinSize:        1,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SnapStep == 0 {
		o.SnapStep = d.SnapStep
	}
	if o.SnapTolerance == 0 {
		o.SnapTolerance = d.SnapTolerance
	}
	if o.NudgeStep == 0 {
		o.NudgeStep = d.NudgeStep
	}
	if o.NudgeStepLarge == 0 {
		o.NudgeStepLarge = d.NudgeStepLarge
	}
	if o.ResizeFactor == 0 {
		o.ResizeFactor = d.ResizeFactor
	}
	if o.MinSize == 0 {
		o.MinSize = d.MinSize
	}
	return o
}

// State is the machine value. Gesture deltas are always computed against the
// snapshot captured at pointer-down, never accumulated move to move, so a
// gesture cannot drift.
type State struct {
	Mode       Mode
	SelectedID string

	handle    Handle
	startX    float64 // pointer at gesture start, percent
	startY    float64
	startPos  scene.Position // placement geometry at gesture start
	startSize scene.Size
	aspect    float64 // width/height captured at resize start
}

// Idle returns the initial machine state.
func Idle() State {
	return State{Mode: ModeIdle}
}

// Reduce applies one event and returns the next state and placement list.
// The input list is never mutated.
func Reduce(st State, placements []scene.Placement, ev Event, dims scene.Dimensions, opts Options) (State, []scene.Placement) {
	opts = opts.withDefaults()
	switch e := ev.(type) {
	case PointerDown:
		return reducePointerDown(st, placements, e, dims)
	case PointerMove:
		return reducePointerMove(st, placements, e, dims, opts)
	case PointerUp:
		st.Mode = ModeIdle
		st.handle = HandleNone
		return st, placements
	case KeyDown:
		return reduceKey(st, placements, e, opts)
	default:
		return st, placements
	}
}

func reducePointerDown(st State, placements []scene.Placement, e PointerDown, dims scene.Dimensions) (State, []scene.Placement) {
	if e.TargetID == "" {
		// Bare canvas clears the selection.
		return Idle(), placements
	}
	p, ok := scene.Find(placements, e.TargetID)
	if !ok {
		return Idle(), placements
	}

	st.SelectedID = p.ID
	st.handle = e.Handle
	st.startX = geom.PixelsToPercent(e.X, float64(dims.Width))
	st.startY = geom.PixelsToPercent(e.Y, float64(dims.Height))
	st.startPos = p.Position
	st.startSize = p.Size
	if e.Handle == HandleNone {
		st.Mode = ModeDragging
	} else {
		st.Mode = ModeResizing
		st.aspect = 0
		if p.Size.Height > 0 {
			st.aspect = p.Size.Width / p.Size.Height
		}
	}
	return st, placements
}

func reducePointerMove(st State, placements []scene.Placement, e PointerMove, dims scene.Dimensions, opts Options) (State, []scene.Placement) {
	if st.Mode == ModeIdle {
		return st, placements
	}
	dx := geom.PixelsToPercent(e.X, float64(dims.Width)) - st.startX
	dy := geom.PixelsToPercent(e.Y, float64(dims.Height)) - st.startY

	switch st.Mode {
	case ModeDragging:
		pos := st.startPos
		pos.X = geom.Snap(geom.Clamp(st.startPos.X+dx, scene.MinPercent, scene.MaxPercent), opts.SnapStep, opts.SnapTolerance)
		pos.Y = geom.Snap(geom.Clamp(st.startPos.Y+dy, scene.MinPercent, scene.MaxPercent), opts.SnapStep, opts.SnapTolerance)
		return st, scene.Update(placements, st.SelectedID, scene.Patch{Position: &pos})
	case ModeResizing:
		size := resize(st, dx, dy, opts)
		return st, scene.Update(placements, st.SelectedID, scene.Patch{Size: &size})
	}
	return st, placements
}

// resize applies the gesture delta to the captured size. Opposite-edge
// handles invert sign so dragging any grip outward always grows the box.
// Corner handles drive width; height follows when aspect is locked.
func resize(st State, dx, dy float64, opts Options) scene.Size {
	size := st.startSize

	var dw, dh float64
	switch st.handle {
	case HandleE, HandleNE, HandleSE:
		dw = dx
	case HandleW, HandleNW, HandleSW:
		dw = -dx
	}
	switch st.handle {
	case HandleS, HandleSE, HandleSW:
		dh = dy
	case HandleN, HandleNE, HandleNW:
		dh = -dy
	}
	dw *= opts.ResizeFactor
	dh *= opts.ResizeFactor

	size.Width = geom.Clamp(st.startSize.Width+dw, opts.MinSize, scene.MaxPercent)
	size.Height = geom.Clamp(st.startSize.Height+dh, opts.MinSize, scene.MaxPercent)

	if size.MaintainAspectRatio && st.aspect > 0 {
		switch st.handle {
		case HandleN, HandleS:
			size.Width = geom.Clamp(size.Height*st.aspect, opts.MinSize, scene.MaxPercent)
		default:
			size.Height = geom.Clamp(size.Width/st.aspect, opts.MinSize, scene.MaxPercent)
		}
	}
	return size
}

func reduceKey(st State, placements []scene.Placement, e KeyDown, opts Options) (State, []scene.Placement) {
	if st.Mode != ModeIdle || st.SelectedID == "" {
		return st, placements
	}

	switch e.Key {
	case KeyDelete, KeyBackspace:
		placements = scene.Remove(placements, st.SelectedID)
		return Idle(), placements
	case KeyEscape:
		return Idle(), placements
	}

	step := opts.NudgeStep
	if e.Shift {
		step = opts.NudgeStepLarge
	}
	var dx, dy float64
	switch e.Key {
	case KeyArrowUp:
		dy = -step
	case KeyArrowDown:
		dy = step
	case KeyArrowLeft:
		dx = -step
	case KeyArrowRight:
		dx = step
	default:
		return st, placements
	}

	p, ok := scene.Find(placements, st.SelectedID)
	if !ok {
		return Idle(), placements
	}
	pos := p.Position
	pos.X = geom.Clamp(pos.X+dx, scene.MinPercent, scene.MaxPercent)
	pos.Y = geom.Clamp(pos.Y+dy, scene.MinPercent, scene.MaxPercent)
	return st, scene.Update(placements, st.SelectedID, scene.Patch{Position: &pos})
}
