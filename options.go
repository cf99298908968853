package structmap

import "github.com/viant/tagly/format/text"

type (
	options struct {
		caseFormat       text.CaseFormat
		directImportOnly bool
	}

	//Option represents type option
	Option func(o *options)

	//Options represents type options
	Options []Option
)

// Apply applies options
func (o Options) Apply(opts *options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(opts)
	}
}

// WithCaseFormat formats plain keys of fields without explicit name with supplied case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.caseFormat = caseFormat
	}
}

// WithDirectImportOnly limits import reconstruction to direct nested attributes,
// sequences and mappings are assigned as they are
func WithDirectImportOnly() Option {
	return func(o *options) {
		o.directImportOnly = true
	}
}
