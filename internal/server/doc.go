// Package server exposes the key service over HTTP.
//
// HTTP API
//
//	POST /process_iris
//	    Multipart upload (field "iris_image"). Derives a keypair from the
//	    image and opens a session. Returns the session id, hex keys, method
//	    and key fingerprint.
//
//	GET /download_keys/{key_type}/{session_id}
//	    Download the private or public key as an armored block, or the
//	    public key as an OpenSSH authorized_keys line (key_type "ssh").
//
//	POST /sign {"session_id", "message"}
//	    Sign message with the session key.
//
//	POST /verify {"session_id", "message", "signature"}
//	    Check a hex signature. A mismatch is reported as "valid": false.
//
//	DELETE /sessions/{session_id}
//	    Forget a session and wipe its key. Always 204.
//
//	GET /health, GET /metrics
//
// Failures are JSON objects {"error": message, "kind": kind}.
//
// Behaviour
//
//   - Sessions live in memory only and expire after the configured TTL.
//   - Every request except /health and /metrics is subject to a per-client
//     token bucket. Clients are keyed by socket address; X-Forwarded-For is
//     honoured only when the peer is a configured trusted proxy.
//   - A lightweight access log records method, path, status, bytes and
//     duration for each request.
package server
