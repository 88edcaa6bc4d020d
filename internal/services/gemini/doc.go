// Package gemini implements the video analyzer collaborator on top of the
// Gemini Files and GenerateContent APIs.
//
// A single analysis uploads the video, polls until the file leaves the
// PROCESSING state, issues one generation request with the segmentation
// prompt, and finally deletes the uploaded file. There is no retry toward
// the API; failures surface to the pipeline, which treats them as fatal for
// the run.
package gemini
