// Package diag defines the diagnostic kinds produced across the server:
// syntax errors from the document model, schema violations from the
// validator, and fetch failures from the schema resolver.
package diag

// Kind is a closed enum of diagnostic categories.
type Kind string

const (
	SyntaxError         Kind = "SyntaxError"
	DuplicateKey        Kind = "DuplicateKey"
	SchemaViolation     Kind = "SchemaViolation"
	Deprecated          Kind = "Deprecated"
	SchemaFetchFailure  Kind = "SchemaFetchFailure"
	RegexCompileFailure Kind = "RegexCompileFailure"
)

// Severity mirrors the LSP DiagnosticSeverity scale (1=Error .. 4=Hint).
type Severity int

const (
	SeverityError       Severity = 1
	SeverityWarning     Severity = 2
	SeverityInformation Severity = 3
	SeverityHint        Severity = 4
)

// defaultSeverity maps each Kind to the severity spec §7 assigns it.
func defaultSeverity(k Kind) Severity {
	switch k {
	case SyntaxError, SchemaViolation:
		return SeverityError
	default:
		return SeverityWarning
	}
}

// Diagnostic is a validator- or parser-level finding, located by an
// instance path (JSON Pointer segments into the value being checked)
// rather than a byte range; the document layer translates InstancePath to
// an LSP Range via the syntax tree before publishing.
type Diagnostic struct {
	Kind         Kind
	Message      string
	InstancePath []string
	Severity     Severity

	// Keyword names the schema keyword that produced this diagnostic (e.g.
	// "pattern", "required"), used to match against a schema's
	// `errorMessage` object-shaped override. Empty when not applicable.
	Keyword string
}

// New builds a Diagnostic with Kind's default severity.
func New(kind Kind, path []string, message string) Diagnostic {
	return Diagnostic{Kind: kind, Message: message, InstancePath: path, Severity: defaultSeverity(kind)}
}

// NewKeyword builds a Diagnostic tagged with the failing keyword.
func NewKeyword(kind Kind, path []string, keyword, message string) Diagnostic {
	d := New(kind, path, message)
	d.Keyword = keyword
	return d
}
