// Package schema parses JSON Schema documents into a Go-native recursive
// record, keeping the original decoded JSON alongside the typed fields so
// JSON-Pointer resolution and unknown-keyword passthrough never lose
// information the typed fields don't model.
package schema

import (
	"regexp"

	json "github.com/goccy/go-json"
)

// NamedSchema is one entry of an ordered name/schema mapping (properties,
// patternProperties, $defs).
type NamedSchema struct {
	Name   string
	Schema *Schema
}

// BoolOrSchema models a JSON Schema keyword whose value may be the boolean
// schema shorthand or a full subschema (additionalProperties, items,
// unevaluatedProperties, unevaluatedItems, contains' siblings, …).
type BoolOrSchema struct {
	IsBool bool
	Bool   bool
	Schema *Schema
}

// Always reports whether this value behaves as the always-succeed schema
// (either literal `true`, or absent modeled as a true BoolOrSchema by the
// caller).
func (b *BoolOrSchema) Always() bool {
	return b != nil && b.IsBool && b.Bool
}

// Never reports whether this value behaves as the always-fail schema.
func (b *BoolOrSchema) Never() bool {
	return b != nil && b.IsBool && !b.Bool
}

// Schema is a parsed, draft-tagged JSON Schema node. Fields are populated
// best-effort: a keyword present with the wrong shape is ignored rather
// than rejecting the whole schema, per spec.
type Schema struct {
	Draft   Draft
	BaseURI string

	// Raw holds the original decoded value (map[string]any, or a bool for
	// the boolean schema shorthand) this Schema was built from. It backs
	// JSON-Pointer resolution and unknown-keyword passthrough.
	Raw any

	// IsBoolean is set when this schema node is the `true`/`false` shorthand.
	IsBoolean    bool
	BooleanValue bool

	ID     string
	SchemaKeyword string // the `$schema` keyword's literal value, if present
	Ref    string
	Defs   []NamedSchema

	Type  []string
	Enum  []any
	Const *ConstValue

	Properties           []NamedSchema
	PatternProperties    []NamedSchema
	AdditionalProperties *BoolOrSchema
	PropertyNames        *Schema
	Required             []string
	MinProperties        *int
	MaxProperties        *int
	DependentRequired    map[string][]string
	DependentSchemas     []NamedSchema

	Items        *Schema
	PrefixItems  []*Schema
	Contains     *Schema
	MinContains  *int
	MaxContains  *int
	UniqueItems  bool
	MinItems     *int
	MaxItems     *int

	MinLength *int
	MaxLength *int
	Pattern   string

	Format string

	Minimum          *Rat
	Maximum          *Rat
	ExclusiveMinimum *Rat
	ExclusiveMaximum *Rat
	MultipleOf       *Rat

	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema
	Not   *Schema

	If   *Schema
	Then *Schema
	Else *Schema

	Title             string
	Description       string
	MarkdownDesc      string
	Default           any
	Deprecated        bool
	DeprecationMsg    string
	Examples          []any
	ErrorMessage      any
	PatternErrorMsg   string
	DoNotSuggest      bool

	// Extra carries every decoded key this struct does not name explicitly,
	// so hover and custom-error logic can still see it.
	Extra map[string]any

	compiledPattern    *regexp.Regexp
	compiledProperties []*regexp.Regexp // parallel to PatternProperties

	parent *Schema
}

// ConstValue distinguishes "const absent" from "const is JSON null".
type ConstValue struct {
	Value any
}

// GetSchemaURI returns the absolute URI this schema should be referenced
// by: its own $id resolved against BaseURI, or BaseURI itself at the root.
func (s *Schema) GetSchemaURI() string {
	if s.ID != "" {
		return resolveRelative(s.BaseURI, s.ID)
	}
	return s.BaseURI
}

// Parent returns the lexically enclosing schema, or nil at the root.
func (s *Schema) Parent() *Schema { return s.parent }

// Root walks Parent links to the outermost schema.
func (s *Schema) Root() *Schema {
	cur := s
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// knownKeys lists every keyword this struct binds to a named field, used to
// populate Extra with everything else.
var knownKeys = map[string]bool{
	"$id": true, "id": true, "$schema": true, "$ref": true, "$defs": true, "definitions": true,
	"type": true, "enum": true, "const": true,
	"properties": true, "patternProperties": true, "additionalProperties": true, "propertyNames": true,
	"required": true, "minProperties": true, "maxProperties": true,
	"dependentRequired": true, "dependentSchemas": true, "dependencies": true,
	"items": true, "additionalItems": true, "prefixItems": true, "contains": true,
	"minContains": true, "maxContains": true, "uniqueItems": true, "minItems": true, "maxItems": true,
	"minLength": true, "maxLength": true, "pattern": true, "format": true,
	"minimum": true, "maximum": true, "exclusiveMinimum": true, "exclusiveMaximum": true, "multipleOf": true,
	"allOf": true, "anyOf": true, "oneOf": true, "not": true,
	"if": true, "then": true, "else": true,
	"title": true, "description": true, "markdownDescription": true, "default": true,
	"deprecated": true, "deprecationMessage": true, "examples": true,
	"errorMessage": true, "patternErrorMessage": true, "doNotSuggest": true,
}

// Parse builds a Schema from a decoded generic JSON value (map[string]any,
// bool, or anything else treated as an invalid/empty schema), inheriting
// draft and base URI from parent when this is a nested call.
func Parse(raw any, parent *Schema, baseURI string) (*Schema, error) {
	if b, ok := raw.(bool); ok {
		return &Schema{IsBoolean: true, BooleanValue: b, Raw: raw, parent: parent, BaseURI: baseURI}, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		// Not an object or boolean: treat as the always-true schema, per
		// "reject nothing structurally".
		return &Schema{IsBoolean: true, BooleanValue: true, Raw: raw, parent: parent, BaseURI: baseURI}, nil
	}

	s := &Schema{Raw: raw, parent: parent, BaseURI: baseURI, Extra: map[string]any{}}
	draft := DefaultDraft
	if parent != nil {
		draft = parent.Draft
	}
	if v, ok := str(obj["$schema"]); ok {
		s.SchemaKeyword = v
		draft = draftFromSchemaURI(v)
	}
	s.Draft = draft

	if v, ok := str(obj["$id"]); ok {
		s.ID = v
	} else if v, ok := str(obj["id"]); ok && draft == D4 {
		s.ID = v
	}
	if s.ID != "" {
		s.BaseURI = resolveRelative(baseURI, s.ID)
	}

	if v, ok := str(obj["$ref"]); ok {
		s.Ref = v
	}

	if defs, ok := obj["$defs"].(map[string]any); ok {
		s.Defs = append(s.Defs, namedSubschemas(defs, s)...)
	}
	if defs, ok := obj["definitions"].(map[string]any); ok {
		s.Defs = append(s.Defs, namedSubschemas(defs, s)...)
	}

	if err := parseType(obj, s); err != nil {
		return nil, err
	}
	if v, ok := obj["enum"].([]any); ok {
		s.Enum = v
	}
	if v, present := obj["const"]; present {
		s.Const = &ConstValue{Value: v}
	}

	parseObjectKeywords(obj, s, draft)
	parseArrayKeywords(obj, s)
	parseStringKeywords(obj, s)
	if err := parseNumericKeywords(obj, s, draft); err != nil {
		return nil, err
	}
	if err := parseComposition(obj, s); err != nil {
		return nil, err
	}
	parseAnnotations(obj, s)

	for k, v := range obj {
		if !knownKeys[k] {
			s.Extra[k] = v
		}
	}
	return s, nil
}

func namedSubschemas(m map[string]any, parent *Schema) []NamedSchema {
	out := make([]NamedSchema, 0, len(m))
	for name, raw := range m {
		child, err := Parse(raw, parent, parent.BaseURI)
		if err != nil {
			continue
		}
		out = append(out, NamedSchema{Name: name, Schema: child})
	}
	return out
}

func str(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func parseType(obj map[string]any, s *Schema) error {
	switch v := obj["type"].(type) {
	case string:
		s.Type = []string{v}
	case []any:
		for _, t := range v {
			if ts, ok := t.(string); ok {
				s.Type = append(s.Type, ts)
			}
		}
	}
	return nil
}

func parseAnnotations(obj map[string]any, s *Schema) {
	if v, ok := str(obj["title"]); ok {
		s.Title = v
	}
	if v, ok := str(obj["description"]); ok {
		s.Description = v
	}
	if v, ok := str(obj["markdownDescription"]); ok {
		s.MarkdownDesc = v
	}
	if v, present := obj["default"]; present {
		s.Default = v
	}
	if v, ok := obj["deprecated"].(bool); ok {
		s.Deprecated = v
	}
	if v, ok := str(obj["deprecationMessage"]); ok {
		s.DeprecationMsg = v
	}
	if v, ok := obj["examples"].([]any); ok {
		s.Examples = v
	}
	if v, present := obj["errorMessage"]; present {
		s.ErrorMessage = v
	}
	if v, ok := str(obj["patternErrorMessage"]); ok {
		s.PatternErrorMsg = v
	}
	if v, ok := obj["doNotSuggest"].(bool); ok {
		s.DoNotSuggest = v
	}
}

// MarshalJSON re-encodes the original decoded value, so hover/format see
// exactly the schema as authored (including unknown keywords).
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.IsBoolean {
		return json.Marshal(s.BooleanValue)
	}
	return json.Marshal(s.Raw)
}
