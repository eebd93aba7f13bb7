package processor

import (
	"bytes"
	"fmt"
)

// Processor stamps a GUID into model descriptions and C headers.
type Processor struct{}

// New creates a new Processor.
func New() *Processor {
	return &Processor{}
}

// Patch returns a copy of doc with every occurrence of placeholder replaced
// by guid, along with the number of replacements made.
// Matching is literal, case-sensitive, leftmost-first and non-overlapping.
// An empty placeholder matches nothing.
func (p *Processor) Patch(doc []byte, placeholder, guid string) ([]byte, int) {
	if placeholder == "" {
		return bytes.Clone(doc), 0
	}

	needle := []byte(placeholder)
	n := bytes.Count(doc, needle)
	if n == 0 {
		return bytes.Clone(doc), 0
	}
	return bytes.ReplaceAll(doc, needle, []byte(guid)), n
}

// Header renders a C header that defines macro as the quoted guid,
// wrapped in an include guard keyed by the same name.
func (p *Processor) Header(macro, guid string) []byte {
	return fmt.Appendf(nil, "#ifndef %s\n#define %s \"%s\"\n#endif\n", macro, macro, guid)
}
