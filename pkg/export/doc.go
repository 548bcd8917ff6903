// Package export writes a rendered snapshot of the live tree to a local
// directory or an S3 bucket.
package export
