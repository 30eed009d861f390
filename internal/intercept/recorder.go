package intercept

import (
	"log/slog"

	"github.com/specialistvlad/odmoptions/internal/flagset"
	"github.com/specialistvlad/odmoptions/internal/model"
)

// Sink is the parser-shaped capability handed to a declaration routine.
type Sink interface {
	AddArgument(names []string, kwargs []flagset.Keyword) error
	AddMutuallyExclusiveGroup() Sink
}

const parserName = "odm"

// Recorder captures declarations into a Table after forwarding them to a real
// parser.
type Recorder struct {
	table  *model.Table
	parser *flagset.Parser
	logger *slog.Logger
}

var _ Sink = (*Recorder)(nil)

// NewRecorder returns a Recorder writing into table.
func NewRecorder(table *model.Table, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		table:  table,
		parser: flagset.New(parserName),
		logger: logger,
	}
}

// AddArgument forwards the declaration to the parser and, when accepted,
// records it under names[0] with every keyword's text.
func (r *Recorder) AddArgument(names []string, kwargs []flagset.Keyword) error {
	if err := r.parser.AddArgument(names, kwargs); err != nil {
		id := ""
		if len(names) > 0 {
			id = names[0]
		}
		return &DeclarationError{Identifier: id, Err: err}
	}

	opt := model.Option{Identifier: names[0], Attributes: make(model.Attributes, 0, len(kwargs))}
	for _, kw := range kwargs {
		opt.Attributes.Set(kw.Name, kw.Text)
	}
	if r.table.Put(opt) {
		r.logger.Debug("Option re-declared, keeping the latest declaration.", "option", opt.Identifier)
	}
	return nil
}

// AddMutuallyExclusiveGroup returns a fresh Recorder over the same table.
func (r *Recorder) AddMutuallyExclusiveGroup() Sink {
	return NewRecorder(r.table, r.logger)
}

// Parser returns the real parser declarations are forwarded to.
func (r *Recorder) Parser() *flagset.Parser {
	return r.parser
}
