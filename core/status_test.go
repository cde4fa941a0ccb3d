package core

import (
	"strings"
	"testing"
)

func upper(item any) string { return strings.ToUpper(item.(string)) }

func TestA11yStatusMessage(t *testing.T) {
	cases := []struct {
		name   string
		params StatusParams
		want   string
	}{
		{"closed with selection", StatusParams{SelectedItem: "apple", ItemToString: upper}, "APPLE"},
		{"closed without selection", StatusParams{ItemToString: upper}, ""},
		{"closed default stringer", StatusParams{SelectedItem: 42}, "42"},
		{"open no results", StatusParams{IsOpen: true, ResultCount: 0, PreviousResultCount: 4}, "No results are available."},
		{
			"open count changed plural",
			StatusParams{IsOpen: true, ResultCount: 3, PreviousResultCount: 2},
			"3 results are available, use up and down arrow keys to navigate. Press Enter key to select.",
		},
		{
			"open count changed singular",
			StatusParams{IsOpen: true, ResultCount: 1, PreviousResultCount: 2},
			"1 result is available, use up and down arrow keys to navigate. Press Enter key to select.",
		},
		{"open count unchanged", StatusParams{IsOpen: true, ResultCount: 3, PreviousResultCount: 3, SelectedItem: "x"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := A11yStatusMessage(tc.params); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
