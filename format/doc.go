// Package format names the document formats read and written by the
// parse and encode packages.
package format
