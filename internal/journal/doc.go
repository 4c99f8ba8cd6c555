// Package journal keeps a SQLite-backed record of subtitle fix runs so that
// batch processing can resume and users can audit what was changed.
package journal
