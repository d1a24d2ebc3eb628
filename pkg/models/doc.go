// Package models defines the domain entities for the notak application.
//
// The data model is intentionally small: [Note] is the only persisted
// entity, identified by a store-assigned [NoteID]. The same struct is
// used for database storage (via GORM struct tags) and for the JSON
// wire format of the REST API, so the API contract and the schema
// cannot drift apart.
package models
