package main

import "errors"

// ErrNoValue is returned by a KV backend when a key was never written.
var ErrNoValue = errors.New("no value for key")

// ErrNotFound is returned when a record id does not exist in its collection.
var ErrNotFound = errors.New("record not found")
