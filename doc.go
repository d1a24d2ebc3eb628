// Package notak is a minimal note-taking system: a REST API server over
// a relational store and an interactive terminal client consuming it.
//
// The server exposes five CRUD endpoints plus a health check over the
// single Note entity, persisted through GORM against PostgreSQL (or
// SQLite for local use). The client keeps a transient copy of the note
// list and a draft form, refreshing the list wholesale after every
// mutation.
//
// # Layout
//
//   - cmd/notak: the server binary (subcommands run, migrate)
//   - cmd/notak-tui: the terminal client
//   - pkg/models: the Note entity and its typed ID
//   - pkg/store: the Store interface and its PostgreSQL/SQLite backends
//   - pkg/notak: application wiring, HTTP router and handlers
//   - pkg/client: typed Go client for the REST API
//   - pkg/ui: the client view-model and rendering
//
// # Quick start
//
//	notak -sqlite notes.db migrate
//	notak -sqlite notes.db run
//	notak-tui -url http://localhost:8080
package notak
