package xlmortgage

// HyperlinkValue is a cell value that jumps to another place in the workbook.
// The workbook writes the display text and an internal link to Location.
type HyperlinkValue struct {
	Location CellRef
	Display  string
}

// String returns the display text for the hyperlink.
func (h HyperlinkValue) String() string {
	if h.Display != "" {
		return h.Display
	}
	return h.Location.String()
}

// Hyperlink creates a HyperlinkValue pointing at location.
func Hyperlink(location CellRef, display string) HyperlinkValue {
	return HyperlinkValue{Location: location, Display: display}
}
