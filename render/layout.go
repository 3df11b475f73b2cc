package render

import (
	"fyne.io/fyne/v2"
)

// SidebarLayout gives the second object a fixed width on the right and the
// rest of the space to the first.
type SidebarLayout struct {
	sidebarWidth float32
}

func NewSidebarLayout(sidebarWidth float32) *SidebarLayout {
	return &SidebarLayout{sidebarWidth: sidebarWidth}
}

func (l *SidebarLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 2 {
		return
	}

	mainWidth := size.Width - l.sidebarWidth
	if mainWidth < 0 {
		mainWidth = 0
	}

	objects[0].Resize(fyne.NewSize(mainWidth, size.Height))
	objects[0].Move(fyne.NewPos(0, 0))

	objects[1].Resize(fyne.NewSize(size.Width-mainWidth, size.Height))
	objects[1].Move(fyne.NewPos(mainWidth, 0))
}

func (l *SidebarLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minWidth, minHeight float32
	for _, o := range objects {
		min := o.MinSize()
		minWidth += min.Width
		if min.Height > minHeight {
			minHeight = min.Height
		}
	}
	return fyne.NewSize(minWidth+l.sidebarWidth, minHeight)
}
