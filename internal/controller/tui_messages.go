package controller

import "time"

// Message types.
type tickMsg time.Time

type startMsg struct {
	mode  StartMode
	files int
}

type concurrencyMsg struct {
	parallel int
	files    int
}

type fileStartedMsg struct {
	path string
}

type fileDoneMsg struct {
	path     string
	errors   int
	warnings int
	fixed    int
	written  bool
}

type finishedMsg struct{}
