package cogent

import (
	"fmt"

	"cogentcore.org/core/core"
	"github.com/hamidzr/screenfix/model"
)

// InspectorLines returns the rows the inspector window shows.
func InspectorLines(platform string, size model.ScreenFixedSize) []string {
	lines := []string{fmt.Sprintf("Platform: %s", platform)}
	if w, ok := size.Size(); ok {
		lines = append(lines,
			fmt.Sprintf("Physical size: %g x %g points", w.X, w.Y),
			"Touch positions are rescaled by viewport / physical size.",
		)
	} else {
		lines = append(lines,
			"Physical size: none",
			"Touch positions are used as reported.",
		)
	}
	return lines
}

// RunInspector shows the registered screen size in a Cogent Core window and
// blocks until it is closed.
func RunInspector(platform string, size model.ScreenFixedSize) {
	body := core.NewBody("Screen Fixed Size")
	body.SetTitle("Screen Fixed Size")

	root := core.NewFrame(body)
	for _, line := range InspectorLines(platform, size) {
		core.NewText(root).SetText(line)
	}

	body.RunMainWindow()
}
