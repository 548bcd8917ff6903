// Package memdom is an in-memory implementation of the host tree protocol.
//
// It backs the reconciler in tests, in server-side rendering, and in the
// preview server, where the "live" tree is held in process and serialized
// to HTML on demand.
package memdom
