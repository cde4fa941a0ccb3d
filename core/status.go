package core

import "fmt"

const noResultsMessage = "No results are available."

// StatusParams is the widget state the live-region text is built from.
type StatusParams struct {
	IsOpen              bool
	SelectedItem        any
	ResultCount         int
	PreviousResultCount int
	ItemToString        func(item any) string
}

// A11yStatusMessage builds the text announced by an accessibility live region.
// An open menu whose result count has not changed since the last announcement yields "",
// so typing that does not change the results is not re-announced.
func A11yStatusMessage(p StatusParams) string {
	if !p.IsOpen {
		if isEmptyValue(p.SelectedItem) {
			return ""
		}
		return itemString(p.ItemToString, p.SelectedItem)
	}
	if p.ResultCount <= 0 {
		return noResultsMessage
	}
	if p.ResultCount != p.PreviousResultCount {
		noun := "results are"
		if p.ResultCount == 1 {
			noun = "result is"
		}
		return fmt.Sprintf("%d %s available, use up and down arrow keys to navigate. Press Enter key to select.", p.ResultCount, noun)
	}
	return ""
}

func itemString(itemToString func(any) string, item any) string {
	if itemToString == nil {
		return fmt.Sprint(item)
	}
	return itemToString(item)
}
