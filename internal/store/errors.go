package store

import "errors"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnsupportedEntity is returned by Flush when an entity of an unknown
// type was staged.
var ErrUnsupportedEntity = errors.New("unsupported entity")

// ErrUnpersistedReference is returned by Flush when a staged entity points
// at a user or tag that has not been flushed yet.
var ErrUnpersistedReference = errors.New("reference to unpersisted entity")
