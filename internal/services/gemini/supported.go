package gemini

import (
	"path/filepath"
	"strings"
)

// supportedExtensions lists the video containers the Files API accepts
// directly; anything else may be rejected or require server-side conversion.
var supportedExtensions = map[string]struct{}{
	".mp4":  {},
	".mpeg": {},
	".mov":  {},
	".avi":  {},
	".flv":  {},
	".mpg":  {},
	".webm": {},
	".wmv":  {},
	".3gp":  {},
}

// SupportedVideo reports whether the path's extension is in the set of
// containers Gemini handles natively.
func SupportedVideo(path string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}
