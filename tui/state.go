package tui

type state int

const (
	emptyState state = iota
	previewState
	errorState
)
