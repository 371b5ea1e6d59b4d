// Package iris talks to an external iris-recognition pipeline over HTTP.
//
// The pipeline itself (segmentation, normalisation, encoding) lives outside
// this module. Client sends a grayscale PNG and receives base64 iris codes.
//
// HTTP API expected from the pipeline
//
//	POST /extract { "image": <base64 PNG>, "eye_side": "right" | "left" }
//	    -> { "error": null | "<message>", "iris_codes": ["<base64>", ...] }
//
//	GET /health
//	    -> 2xx when the pipeline is ready.
//
// Extraction is attempted for the right eye first and, on failure, once more
// for the left eye.
package iris
