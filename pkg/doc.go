// Package pkg contains the sub-packages of the notak application.
//
// The split follows the dependency direction: pkg/models holds the
// domain entities, pkg/store the persistence layer over them, pkg/notak
// the HTTP application on top of the store, and pkg/client plus pkg/ui
// the consuming side driven purely through the public REST API.
package pkg
