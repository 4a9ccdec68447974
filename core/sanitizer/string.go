package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)

// Limits applied by the composite sanitizers.
const (
	MaxNicknameLength = 50
	MaxPlanNameLength = 120
	MaxMessageLength  = 4000
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower trims whitespace and converts to lowercase in one operation.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaxLength cuts s to maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// RemoveExtraWhitespace collapses runs of whitespace into one space.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters except newline, carriage return and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// StripHTML removes tags and decodes entities.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTagRegex.ReplaceAllString(s, ""))
}

// SingleLine replaces line breaks with spaces and collapses whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return RemoveExtraWhitespace(s)
}

// Normalize converts s to Unicode NFC, so "e" + combining acute and "é" compare equal.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Email trims, lowercases and strips inner spaces from an address.
func Email(s string) string {
	return strings.Join(strings.Fields(TrimToLower(Normalize(s))), "")
}

// Nickname keeps a display name on one line without markup.
func Nickname(s string) string {
	return MaxLength(SingleLine(StripHTML(RemoveControlChars(Normalize(s)))), MaxNicknameLength)
}

// PlanName keeps a plan title on one line without markup.
func PlanName(s string) string {
	return MaxLength(SingleLine(StripHTML(RemoveControlChars(Normalize(s)))), MaxPlanNameLength)
}

// Message cleans a chat message. Line breaks are kept; surrounding whitespace is not.
func Message(s string) string {
	return MaxLength(Trim(RemoveControlChars(Normalize(s))), MaxMessageLength)
}
