// Command cleave splits a video into per-event clips. The split command
// uploads the video to Gemini, parses the returned segment table, cuts
// each segment with ffmpeg stream copy, and writes a CSV manifest next to
// the clips. Supporting commands manage configuration, check the
// environment, and list recent runs.
package main
