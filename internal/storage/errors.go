package storage

import "errors"

var (
	// ErrUnavailable is returned by every operation of a degraded client.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrRead wraps backend failures while querying or listing.
	ErrRead = errors.New("storage read failed")
	// ErrWrite wraps backend failures while inserting.
	ErrWrite = errors.New("storage write failed")
)
