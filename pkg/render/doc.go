// Package render serializes live host trees to HTML.
//
// It powers the preview server's page response and the static exporter.
// Text and attribute values are escaped; attributes render in sorted order
// so output is stable across passes.
package render
