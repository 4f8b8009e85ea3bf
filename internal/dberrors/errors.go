package dberrors

import "errors"

// Sentinel errors for unexpected (not domain-expected) failures -
// corrupt persisted state, I/O failures during dump/load. Domain
// outcomes like "object already exists" use Status, not these.
var (
	ErrCorruptDump  = errors.New("dberrors: dump file is corrupt or truncated")
	ErrArenaExceeded = errors.New("dberrors: bptree node arena index out of range")
	ErrBucketFull   = errors.New("dberrors: hash bucket exceeded capacity after split")
)
