package ui

import "time"

// tickMsg is sent on a timer while the header animates
type tickMsg time.Time

// throttleMsg closes the row-visibility throttle window gen
type throttleMsg struct {
	gen uint64
}

// pagerMsg reports that the ov pager returned
type pagerMsg struct {
	what string
	err  error
}

// clearStatusMsg clears a transient status message
type clearStatusMsg struct{}
