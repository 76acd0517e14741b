package tables

import "fmt"

// ErrTableIOFailure is returned inside this package by the cache readers
// when a table file has the wrong size. Disk cache failures never surface
// to callers of Load, which falls back to building tables in RAM: Load
// discards cache-read errors without logging them and logs only errors
// from writing the cache.
var ErrTableIOFailure = fmt.Errorf("tables: disk cache read or write failed")
