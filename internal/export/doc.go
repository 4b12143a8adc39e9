// Package export writes generated flashcard batches to disk as CSV and
// JSON files under a configured output directory.
package export
