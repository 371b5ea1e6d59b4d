// Package app loads configuration and wires application dependencies.
//
// It builds the session store, the optional iris extractor client, the
// high-level services and the HTTP server from Config, exposing them via the
// Wire struct for commands to use.
package app
