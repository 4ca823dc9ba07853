package domain

import "errors"

// ErrPersistence wraps durable-store read/write failures. Mutating operations
// persist first and only commit on success, so a persistence failure always
// leaves in-memory state untouched.
var ErrPersistence = errors.New("persistent store unavailable")
