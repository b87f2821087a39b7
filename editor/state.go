// Package editor provides the text editing terminal user interface.
package editor

type state int

const (
	editingState state = iota
	findState
	replaceState
	openState
	saveAsState
	confirmDiscardState
)
