package player

import "errors"

// ErrFinished is returned by Step once the sequence is exhausted.
var ErrFinished = errors.New("player: step sequence finished")
