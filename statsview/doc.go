// Package statsview optionally serves live runtime graphs (heap, goroutines,
// GC pauses) while a long ROM run is in progress. The server is only compiled
// in with the statsview build tag:
//
//	go build -tags statsview ./romtest
//
// Without the tag Launch returns a Server whose Stop does nothing and
// Available returns false.
package statsview
