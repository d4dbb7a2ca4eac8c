// Package filestore loads and saves plain-text documents.
//
// Documents are persisted verbatim as lines joined with "\n". The store
// remembers the modification time of every file it loads or saves so it can
// tell when a file was changed by another program.
//
// All file access goes through the FileSystem interface; OSFS is used in
// production and MemFS in tests.
package filestore
