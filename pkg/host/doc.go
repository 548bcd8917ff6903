// Package host defines the live-tree protocol the reconciler runs against.
//
// The reconciler does not care what the rendering surface is, only that it
// exposes a small fixed operation set: create element, create text node,
// append/remove/replace children, read and write attributes, read and write
// text content, and attach event listeners. Any conforming implementation
// works, including the in-memory tree in the memdom subpackage used for
// testing and server-side rendering.
package host
