// Package notak contains the application layer of the notak server:
// configuration, command parsing and dispatch, the HTTP router and the
// note handlers.
//
// The server exposes a resource-oriented JSON API over the Note entity.
// Handlers translate HTTP verbs and paths into calls on the
// [github.com/notak/notak/pkg/store.Store] interface and map failures
// onto a small taxonomy: malformed input is 400, a missing note is 404,
// and any unexpected store failure is 500 with a generic message — the
// underlying error is logged server-side and never leaks to the caller.
//
// Operations are organized as [Command] implementations ([RunCommand],
// [MigrateCommand]) parsed from the CLI by [Parse] and executed through
// [Main], so tests can drive the full application in-process without
// building the binary.
package notak
