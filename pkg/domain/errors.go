package domain

import "errors"

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ErrEmptyRunID is returned when a store is asked to save a run without an ID.
var ErrEmptyRunID = errors.New("run ID cannot be empty")
