package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mfenderov/fmu-uuid/internal/processor"
	"github.com/mfenderov/fmu-uuid/internal/storage"
	"github.com/mfenderov/fmu-uuid/pkg/models"
)

// WarnFunc receives non-fatal warnings raised while stamping.
type WarnFunc func(msg string)

// Request names the files and tokens of a single stamping run.
type Request struct {
	InputPath   string // model description to read
	Placeholder string // literal token to replace with the GUID
	OutputPath  string // patched model description
	HeaderPath  string // generated C header
	MacroName   string // macro defined in the header
}

// Result holds pipeline execution results.
type Result struct {
	GUID         uuid.UUID
	Replacements int
	Duration     time.Duration
}

// Pipeline derives a model description GUID and writes the stamped outputs.
type Pipeline struct {
	store     *storage.Client
	processor *processor.Processor
	warn      WarnFunc
}

// New creates a new Pipeline. A nil warn discards warnings.
func New(store *storage.Client, warn WarnFunc) *Pipeline {
	if warn == nil {
		warn = func(string) {}
	}
	return &Pipeline{
		store:     store,
		processor: processor.New(),
		warn:      warn,
	}
}

// Run reads the input description, derives its GUID, and writes the patched
// description followed by the header. A failure writing the header leaves
// the already written description in place.
func (p *Pipeline) Run(req Request) (*Result, error) {
	start := time.Now()

	content, err := p.store.Read(req.InputPath)
	if err != nil {
		return nil, err
	}
	md := models.ModelDescription{Path: req.InputPath, Content: content}
	slog.Debug("model description read", "path", md.Path, "bytes", len(md.Content))

	guid := md.GUID()
	guidString := guid.String()
	slog.Debug("guid derived", "guid", guidString)

	output, n := p.processor.Patch(md.Content, req.Placeholder, guidString)
	if bytes.Equal(output, md.Content) {
		p.warn(fmt.Sprintf(`Placeholder "%s" not present in input file "%s"`, req.Placeholder, req.InputPath))
	}
	slog.Debug("placeholder replaced", "placeholder", req.Placeholder, "count", n)

	if err := p.store.Write(req.OutputPath, output); err != nil {
		return nil, err
	}
	slog.Debug("model description written", "path", req.OutputPath)

	if err := p.store.Write(req.HeaderPath, p.processor.Header(req.MacroName, guidString)); err != nil {
		return nil, err
	}
	slog.Debug("header written", "path", req.HeaderPath, "macro", req.MacroName)

	return &Result{
		GUID:         guid,
		Replacements: n,
		Duration:     time.Since(start),
	}, nil
}
