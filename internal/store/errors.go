package store

import "errors"

// Sentinel errors returned by [FileStorage] implementations. Callers should
// use [errors.Is] to match against these values; the underlying OS or
// object-store error is wrapped and meant for logs only.
var (
	// ErrFileNotFound is returned when the requested file cannot be opened
	// for any reason: it is missing, unreadable or the name is invalid.
	ErrFileNotFound = errors.New("file not found")

	// ErrCreatingDirectory is returned when the storage location cannot be
	// created or checked.
	ErrCreatingDirectory = errors.New("error creating storage location")

	// ErrCreatingFile is returned when the destination file cannot be
	// created or truncated.
	ErrCreatingFile = errors.New("error creating file")

	// ErrWritingFile is returned when writing the content of an already
	// created file fails.
	ErrWritingFile = errors.New("error writing file")

	// ErrReadingFile is returned when a file was opened but its content
	// could not be read.
	ErrReadingFile = errors.New("error reading file")

	// ErrUnknownBackend is returned by [NewStorages] for a backend name it
	// does not know.
	ErrUnknownBackend = errors.New("unknown storage backend")
)
