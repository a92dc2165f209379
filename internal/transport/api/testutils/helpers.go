package testutils

import "strings"

// OverBytesUnderRunes строка из count символов по 4 байта: проходит тег max, но не max_bytes той же длины.
func OverBytesUnderRunes(count int) string {
	return strings.Repeat("😁", count)
}
