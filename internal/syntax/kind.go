package syntax

// Kind identifies the grammar production a Node represents. The grammar is
// intentionally small: the rest of the core only depends on these kinds,
// byte ranges, and field-named children, never on tokenizer internals.
type Kind string

const (
	KindDocument Kind = "document"
	KindObject   Kind = "object"
	KindArray    Kind = "array"
	KindPair     Kind = "pair"
	KindString   Kind = "string"
	KindNumber   Kind = "number"
	KindTrue     Kind = "true"
	KindFalse    Kind = "false"
	KindNull     Kind = "null"
	KindComment  Kind = "comment"
	KindError    Kind = "ERROR"
	KindMissing  Kind = "MISSING"
)

// Field names used on named children (currently only pair key/value).
const (
	FieldKey   = "key"
	FieldValue = "value"
)
