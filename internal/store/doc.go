// Package store provides in-memory session storage for Anarchy Auth.
//
// SessionMemoryStore is the only shared mutable state in the service. A
// single RWMutex guards the session map; sessions are copied out so callers
// never share memory with the store. Sessions expire after a TTL, are evicted
// lazily on Get and eagerly by Run's periodic sweep, and have their private
// key bytes wiped on removal.
//
// Nothing is written to disk: key material lives only as long as the process.
package store
