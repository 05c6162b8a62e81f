package entity

import "errors"

var (
	// ErrPathMissing is returned when a path does not resolve to a live container.
	ErrPathMissing = errors.New("path does not resolve")
	// ErrIndexOutOfRange is returned when an index does not address an element.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrAlreadyStaged is returned when a session tries to detach a second item.
	ErrAlreadyStaged = errors.New("drag session already holds a staged item")
	// ErrInvalidView is returned when an imported view is malformed.
	ErrInvalidView = errors.New("invalid view")
)
