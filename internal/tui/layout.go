package tui

// Border dimensions for lipgloss boxes
const (
	BorderWidth  = 2 // Left + right border (1 char each)
	BorderHeight = 2 // Top + bottom border (1 char each)
)

// PaneDimensions holds calculated dimensions for the TUI layout
type PaneDimensions struct {
	// Main content area (below the tab strip)
	ContentWidth  int
	ContentHeight int

	// Dashboard split when a task's calendar is open
	ListWidth   int // ~55% of content width
	DetailWidth int // remainder

	// Fixed bars
	HeaderHeight    int // Title + tab strip: 2 lines
	TextEntryHeight int // Fixed: 3 lines
	HelpHeight      int // Fixed: 1 line
	StatusHeight    int // Fixed: 1 line
}

// CalculatePaneDimensions computes pane sizes based on terminal dimensions.
// The content area takes whatever height the fixed bars leave; on the
// dashboard it is split 55-45 between the task list and the detail calendar.
func CalculatePaneDimensions(termWidth, termHeight int) PaneDimensions {
	dims := PaneDimensions{
		HeaderHeight:    2,
		TextEntryHeight: 3,
		HelpHeight:      1,
		StatusHeight:    1,
	}

	availableHeight := termHeight - dims.HeaderHeight - dims.TextEntryHeight - dims.HelpHeight - dims.StatusHeight
	if availableHeight < 0 {
		availableHeight = 0
	}
	dims.ContentHeight = availableHeight

	if termWidth < 0 {
		termWidth = 0
	}
	dims.ContentWidth = termWidth

	// Use integer arithmetic to ensure sum equals termWidth
	dims.ListWidth = int(float64(termWidth) * 0.55)
	dims.DetailWidth = termWidth - dims.ListWidth

	return dims
}
