package utils

import (
	"regexp"
	"strings"
)

var (
	drivePathRe  = regexp.MustCompile(`/d/([^/\?]+)`)
	driveQueryRe = regexp.MustCompile(`id=([^&]+)`)
)

// DirectDriveLink rewrites a Google Drive share link into its direct
// visualization URL so product images load without the Drive viewer.
// Non-Drive URLs pass through untouched.
func DirectDriveLink(url string) string {
	if url == "" || !strings.Contains(url, "drive.google.com") {
		return url
	}

	match := drivePathRe.FindStringSubmatch(url)
	if match == nil {
		match = driveQueryRe.FindStringSubmatch(url)
	}
	if match == nil {
		return url
	}
	return "https://drive.google.com/uc?export=view&id=" + match[1]
}
