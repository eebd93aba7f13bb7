package models

import "github.com/google/uuid"

// NamespaceGUID scopes every GUID generated by fmu-uuid.
// It was generated randomly once and must never change.
const NamespaceGUID = "23d0734c-3983-4f65-a8f7-3bd5c5693546"

// ModelDescription is a model description document read from disk.
type ModelDescription struct {
	Path    string
	Content []byte // raw bytes, no newline translation
}

// GUID returns the identifier derived from the description content.
func (m ModelDescription) GUID() uuid.UUID {
	return GenerateGUID(m.Content)
}

// Namespace returns the parsed namespace UUID.
// It panics if NamespaceGUID is malformed.
func Namespace() uuid.UUID {
	return uuid.MustParse(NamespaceGUID)
}

// GenerateGUID creates a deterministic name-based (version 5) UUID from content.
// Whitespace is ignored, so reformatting a document keeps its GUID.
func GenerateGUID(content []byte) uuid.UUID {
	return uuid.NewSHA1(Namespace(), StripWhitespace(content))
}

// StripWhitespace returns a copy of b with all ASCII whitespace removed.
// Works byte-wise so non-UTF-8 input passes through untouched.
func StripWhitespace(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if !IsSpace(c) {
			out = append(out, c)
		}
	}
	return out
}

// IsSpace reports whether c is whitespace in the C locale:
// space, tab, newline, carriage return, form feed or vertical tab.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
