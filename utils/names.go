package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	versionPattern         = regexp.MustCompile(`(?i)v?\d+\.\d+(?:\.\d+)?`)
	antiCheatMarkerPattern = regexp.MustCompile(`\s*\(有反作弊文件\)\s*`)
)

// CleanGameName strips the artifacts catalog exports carry in the name
// column: a version token like "v1.2.3" and the literal anti-cheat marker.
// Very short names are returned as-is, they cannot contain either artifact
// without losing the actual title.
func CleanGameName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= 2 {
		return name
	}

	if match := versionPattern.FindString(name); match != "" {
		name = strings.TrimSpace(strings.Replace(name, match, "", 1))
	}

	name = strings.TrimSpace(antiCheatMarkerPattern.ReplaceAllString(name, ""))

	return name
}
