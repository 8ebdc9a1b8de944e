package importer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	driveLinkArtifact   = "drive_link"
	directEmbedTemplate = "https://lh3.googleusercontent.com/d/%s"
	bareIDMinLength     = 20
)

var (
	directEmbedMarkers = []string{"googleusercontent.com/d/", "drive.google.com/thumbnail"}

	filePathPattern = regexp.MustCompile(`/file/d/([^/?#]+)`)
	idParamPattern  = regexp.MustCompile(`[?&]id=([^&#]+)`)
)

// ResolveImageRef turns a sheet image cell into a directly embeddable URL.
// It returns "" when the cell is empty or cannot be used as an image.
//
// Accepted shapes: an already direct link (returned unchanged), a sharing
// link with /file/d/<id>/, a link with an id=<id> parameter, a bare file id,
// and any other absolute http(s) URL (returned unchanged).
func ResolveImageRef(raw string) string {
	value := strings.TrimSpace(raw)
	value = strings.TrimSpace(strings.TrimSuffix(value, driveLinkArtifact))
	if value == "" {
		return ""
	}

	if IsDirectEmbed(value) {
		return value
	}

	if id := extractFileID(value); id != "" {
		return fmt.Sprintf(directEmbedTemplate, id)
	}

	if strings.HasPrefix(value, "http") {
		return value
	}
	return ""
}

// IsDirectEmbed reports whether value already points at a direct-embed host.
func IsDirectEmbed(value string) bool {
	for _, marker := range directEmbedMarkers {
		if strings.Contains(value, marker) {
			return true
		}
	}
	return false
}

func extractFileID(value string) string {
	var id string
	switch {
	case filePathPattern.MatchString(value):
		id = filePathPattern.FindStringSubmatch(value)[1]
	case idParamPattern.MatchString(value):
		id = idParamPattern.FindStringSubmatch(value)[1]
	case utf8.RuneCountInString(value) > bareIDMinLength && !strings.Contains(value, "/") && !strings.Contains(value, "http"):
		id = value
	}

	if cut := strings.IndexAny(id, "?&#"); cut >= 0 {
		id = id[:cut]
	}
	return id
}
