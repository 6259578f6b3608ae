// Package template compiles naming-convention strings into token
// sequences and runs them in both directions: filling placeholders from
// variable bindings, and matching a literal path segment back into
// captured values.
//
// The only metacharacters are "{" and "}" and there is no escape syntax.
// A convention is a flat alternation of literal runs and "{name}"
// placeholders within a single path segment.
package template

import (
	"fmt"
	"strings"
)

// Values supplies variable bindings to Fill.
type Values interface {
	Get(name string) (string, bool)
}

// Capture is one placeholder value recovered by Match, in template order.
type Capture struct {
	Name  string
	Value string
}

type token struct {
	text  string // literal run, or placeholder name
	isVar bool
}

// Template is a compiled naming convention. Immutable after Compile.
type Template struct {
	raw    string
	tokens []token
	names  []string // unique placeholder names, first-appearance order
}

// ParseError reports a malformed naming convention.
type ParseError struct {
	Template string
	Offset   int // byte offset of the defect
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template %q: %s (offset %d)", e.Template, e.Reason, e.Offset)
}

// MissingVariableError reports an unbound placeholder during Fill.
type MissingVariableError struct {
	Template string
	Name     string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("template %q: no value bound for placeholder %q", e.Template, e.Name)
}

// NoMatchError reports a segment that does not fit the template.
type NoMatchError struct {
	Template string
	Segment  string
	Reason   string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("segment %q does not match template %q: %s", e.Segment, e.Template, e.Reason)
}

// Compile parses a naming convention. Rejected: unbalanced braces, empty
// placeholder names, stray literal braces, and adjacent placeholders with
// no intervening literal (unresolvable when matching in reverse).
func Compile(raw string) (*Template, error) {
	t := &Template{raw: raw}
	var lit strings.Builder
	prevVar := false
	for i := 0; i < len(raw); {
		switch raw[i] {
		case '{':
			if lit.Len() > 0 {
				t.tokens = append(t.tokens, token{text: lit.String()})
				lit.Reset()
				prevVar = false
			}
			j := i + 1
			for j < len(raw) && raw[j] != '}' && raw[j] != '{' {
				j++
			}
			if j >= len(raw) || raw[j] == '{' {
				return nil, &ParseError{Template: raw, Offset: i, Reason: "unbalanced '{'"}
			}
			name := raw[i+1 : j]
			if name == "" {
				return nil, &ParseError{Template: raw, Offset: i, Reason: "empty placeholder name"}
			}
			if prevVar {
				return nil, &ParseError{
					Template: raw,
					Offset:   i,
					Reason:   fmt.Sprintf("placeholder %q is adjacent to the previous placeholder", name),
				}
			}
			t.tokens = append(t.tokens, token{text: name, isVar: true})
			if !containsName(t.names, name) {
				t.names = append(t.names, name)
			}
			prevVar = true
			i = j + 1
		case '}':
			return nil, &ParseError{Template: raw, Offset: i, Reason: "unbalanced '}'"}
		default:
			lit.WriteByte(raw[i])
			prevVar = false
			i++
		}
	}
	if lit.Len() > 0 {
		t.tokens = append(t.tokens, token{text: lit.String()})
	}
	return t, nil
}

// MustCompile is Compile for known-good conventions; it panics on error.
func MustCompile(raw string) *Template {
	t, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return t
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Raw returns the original naming convention string.
func (t *Template) Raw() string { return t.raw }

// Names returns the placeholder names in first-appearance order.
func (t *Template) Names() []string {
	return append([]string(nil), t.names...)
}

// Literals returns the literal runs in order.
func (t *Template) Literals() []string {
	var lits []string
	for _, tok := range t.tokens {
		if !tok.isVar {
			lits = append(lits, tok.text)
		}
	}
	return lits
}

// Static reports whether the template contains no placeholders.
func (t *Template) Static() bool { return len(t.names) == 0 }

// PlaceholderOnly reports whether the template is a single bare
// placeholder, which matches any segment.
func (t *Template) PlaceholderOnly() bool {
	return len(t.tokens) == 1 && t.tokens[0].isVar
}

// Shape returns the template with every placeholder collapsed to "*".
// Two templates with equal shapes are indistinguishable to Match.
func (t *Template) Shape() string {
	var b strings.Builder
	for _, tok := range t.tokens {
		if tok.isVar {
			b.WriteByte('*')
		} else {
			b.WriteString(tok.text)
		}
	}
	return b.String()
}

// Fill renders the template by substituting each placeholder from vals in
// template order. An unbound placeholder fails with MissingVariableError;
// a bound empty string is a value and substitutes as-is.
func (t *Template) Fill(vals Values) (string, error) {
	var b strings.Builder
	b.Grow(len(t.raw))
	for _, tok := range t.tokens {
		if !tok.isVar {
			b.WriteString(tok.text)
			continue
		}
		var v string
		var ok bool
		if vals != nil {
			v, ok = vals.Get(tok.text)
		}
		if !ok {
			return "", &MissingVariableError{Template: t.raw, Name: tok.text}
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

// Match reverse-parses a literal segment against the template. Literal
// runs anchor left to right at their first occurrence; the substrings
// between anchors become placeholder captures. Compile already rejected
// adjacent placeholders, so the single-pass scan is deterministic.
func (t *Template) Match(segment string) ([]Capture, error) {
	caps := make([]Capture, 0, len(t.names))
	pos := 0
	for i, tok := range t.tokens {
		if !tok.isVar {
			if !strings.HasPrefix(segment[pos:], tok.text) {
				return nil, &NoMatchError{
					Template: t.raw,
					Segment:  segment,
					Reason:   fmt.Sprintf("literal %q not found at offset %d", tok.text, pos),
				}
			}
			pos += len(tok.text)
			continue
		}
		if i == len(t.tokens)-1 {
			caps = append(caps, Capture{Name: tok.text, Value: segment[pos:]})
			pos = len(segment)
			continue
		}
		// The next token is a literal anchor: tokens alternate.
		anchor := t.tokens[i+1].text
		off := strings.Index(segment[pos:], anchor)
		if off < 0 {
			return nil, &NoMatchError{
				Template: t.raw,
				Segment:  segment,
				Reason:   fmt.Sprintf("literal %q not found after offset %d", anchor, pos),
			}
		}
		caps = append(caps, Capture{Name: tok.text, Value: segment[pos : pos+off]})
		pos += off
	}
	if pos != len(segment) {
		return nil, &NoMatchError{
			Template: t.raw,
			Segment:  segment,
			Reason:   fmt.Sprintf("unmatched trailing text %q", segment[pos:]),
		}
	}
	return caps, nil
}
