// Package mocks provides hand-written in-memory implementations of the store
// interfaces for tests. They honor the same ordering and owner-scoping
// semantics as the PostgreSQL implementations.
package mocks
