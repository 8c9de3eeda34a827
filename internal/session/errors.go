package session

import "errors"

var (
	// ErrContainerNotFound indicates an action targeted an unknown container.
	ErrContainerNotFound = errors.New("session: container the action controls does not exist")

	// ErrBusy indicates the container is currently being sorted.
	ErrBusy = errors.New("session: container is currently being sorted")

	// ErrUnknownSortType indicates the requested sorting type is not implemented.
	ErrUnknownSortType = errors.New("session: this sorting type either does not exist or is not yet implemented")

	// ErrStopUnsupported indicates a running sort cannot be interrupted.
	ErrStopUnsupported = errors.New("session: a running sort cannot be stopped, it runs to completion")
)
