package render

import (
	"image/color"

	"cogentcore.org/core/math32"
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/screenfix/core"
)

// TouchPhase is the stage of a touch reported by TouchArea.
type TouchPhase int

const (
	TouchDown TouchPhase = iota
	TouchUp
	TouchCancel
	Tap
)

func (p TouchPhase) String() string {
	switch p {
	case TouchDown:
		return "down"
	case TouchUp:
		return "up"
	case TouchCancel:
		return "cancel"
	default:
		return "tap"
	}
}

// TouchArea is a transparent surface that reports corrected touch positions.
// Positions are canvas absolute, so the fixer's viewport should be the
// canvas size.
type TouchArea struct {
	widget.BaseWidget
	fixer   *core.TouchFixer
	onTouch func(phase TouchPhase, pos fyne.Position)
}

func NewTouchArea(fixer *core.TouchFixer, onTouch func(TouchPhase, fyne.Position)) *TouchArea {
	area := &TouchArea{
		fixer:   fixer,
		onTouch: onTouch,
	}
	area.ExtendBaseWidget(area)
	return area
}

// CanvasViewport returns a viewport func reading the live size of c.
func CanvasViewport(c fyne.Canvas) func() math32.Vector2 {
	return func() math32.Vector2 {
		size := c.Size()
		return math32.Vec2(size.Width, size.Height)
	}
}

func (a *TouchArea) emit(phase TouchPhase, ev *fyne.PointEvent) {
	if a.onTouch == nil || ev == nil {
		return
	}
	pos := ev.AbsolutePosition
	if a.fixer != nil {
		fixed := a.fixer.Fix(math32.Vec2(pos.X, pos.Y))
		pos = fyne.NewPos(fixed.X, fixed.Y)
	}
	a.onTouch(phase, pos)
}

func (a *TouchArea) Tapped(ev *fyne.PointEvent) {
	a.emit(Tap, ev)
}

// TouchDown implements mobile.Touchable.
func (a *TouchArea) TouchDown(ev *mobile.TouchEvent) {
	a.emit(TouchDown, &ev.PointEvent)
}

func (a *TouchArea) TouchUp(ev *mobile.TouchEvent) {
	a.emit(TouchUp, &ev.PointEvent)
}

func (a *TouchArea) TouchCancel(ev *mobile.TouchEvent) {
	a.emit(TouchCancel, &ev.PointEvent)
}

func (a *TouchArea) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(color.Transparent)
	return &touchAreaRenderer{rect: rect}
}

type touchAreaRenderer struct {
	rect *canvas.Rectangle
}

func (r *touchAreaRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *touchAreaRenderer) Layout(size fyne.Size) {
	r.rect.Resize(size)
}

func (r *touchAreaRenderer) Refresh() {
	canvas.Refresh(r.rect)
}

func (r *touchAreaRenderer) Destroy() {}

func (r *touchAreaRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect}
}

var (
	_ fyne.Tappable    = (*TouchArea)(nil)
	_ mobile.Touchable = (*TouchArea)(nil)
)
