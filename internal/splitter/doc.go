// Package splitter orchestrates a full segmentation run: the input video
// is analyzed by a remote model, the response is parsed into event
// segments, each segment is cut into a lossless clip via stream copy, and
// a manifest records everything that was detected.
//
// The pipeline draws a hard line between fatal and per-segment failures.
// Missing input, an unusable output directory, a failed analysis, or an
// empty segment table abort the run. A single clip that cannot be cut only
// drops that clip; the run continues and the manifest still lists the
// segment.
package splitter
