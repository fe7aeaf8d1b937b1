// Package repository defines the persistence interface for recipebox.
//
// The application persists whole collections as encoded blobs under fixed
// keys (KeyLikes, KeyList), read once when a session starts and written
// after every mutation. Store is that key/value capability; the sqlite
// subpackage implements it.
//
// # SQLite Implementation
//
// The sqlite implementation keeps blobs in a single table using WAL mode
// and a busy timeout. The schema is created on open.
//
// # Testing
//
// Tests run against in-memory databases.
package repository
