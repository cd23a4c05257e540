package controller

import "github.com/bnema/datagrid/internal/domain/entity"

// Button is a mouse button number.
type Button int

const (
	// ButtonNone stands for wheel and other buttons the grid ignores.
	ButtonNone Button = 0
	// ButtonLeft picks a series and opens its action menu.
	ButtonLeft Button = 1
	// ButtonMiddle opens the grid menu.
	ButtonMiddle Button = 2
	// ButtonRight opens the data menu.
	ButtonRight Button = 3
)

// ButtonPress is a mouse press on the grid. Panel is empty when the press
// landed outside every panel.
type ButtonPress struct {
	X, Y   int
	Button Button
	Panel  entity.PanelID
}

// Pick is a press that hit a plotted series.
type Pick struct {
	X, Y   int
	Button Button
	Panel  entity.PanelID
	Artist entity.ArtistID
}
