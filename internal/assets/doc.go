// Package assets loads macro table sources.
//
// Tables are CSV files with the columns "Search For", "Replace With", and
// "Match Mode". A default set ships embedded in the binary; a filesystem
// loader lets users override the whole set with their own directory.
package assets
