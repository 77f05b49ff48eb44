// internal/browser/parser/css.go
package parser

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// SimpleSelector is a tag/id/class constraint set. Empty strings mean no constraint.
type SimpleSelector struct {
	TagName string
	ID      string
	Classes []string
}

// Specificity is the (id, class, tag) triple of a selector.
type Specificity struct {
	A, B, C int
}

// Compare orders specificities lexicographically. It returns -1, 0 or +1.
func (s Specificity) Compare(o Specificity) int {
	switch {
	case s.A != o.A:
		return cmpInt(s.A, o.A)
	case s.B != o.B:
		return cmpInt(s.B, o.B)
	default:
		return cmpInt(s.C, o.C)
	}
}

// Less reports whether s ranks strictly below o.
func (s Specificity) Less(o Specificity) bool {
	return s.Compare(o) < 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Specificity calculates the specificity of a simple selector.
func (s SimpleSelector) Specificity() Specificity {
	var spec Specificity
	if s.ID != "" {
		spec.A = 1
	}
	spec.B = len(s.Classes)
	if s.TagName != "" {
		spec.C = 1
	}
	return spec
}

func (s SimpleSelector) String() string {
	var sb strings.Builder
	sb.WriteString(s.TagName)
	if s.ID != "" {
		sb.WriteString("#" + s.ID)
	}
	for _, class := range s.Classes {
		sb.WriteString("." + class)
	}
	if sb.Len() == 0 {
		return "*"
	}
	return sb.String()
}

// Declaration is a name/value pair (e.g., margin: auto).
type Declaration struct {
	Name  string
	Value Value
}

// Rule applies its declarations to elements matching any of its selectors.
// Selectors are kept sorted by descending specificity.
type Rule struct {
	Selectors    []SimpleSelector
	Declarations []Declaration
}

// StyleSheet is an ordered list of rules.
type StyleSheet struct {
	Rules []Rule
}

// token is a lexed CSS token with its byte offset in the source.
type token struct {
	tt     css.TokenType
	data   string
	offset int
}

// Parser holds the state of the CSS parser.
type Parser struct {
	tokens []token
	pos    int
}

// NewParser tokenizes the input. Comments are dropped here; whitespace is kept
// because it terminates a simple selector.
func NewParser(input string) (*Parser, error) {
	lexer := css.NewLexer(parse.NewInput(strings.NewReader(input)))
	p := &Parser{}
	offset := 0
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("tokenizing stylesheet at offset %d: %w", offset, err)
			}
			break
		}
		if tt != css.CommentToken {
			p.tokens = append(p.tokens, token{tt: tt, data: string(data), offset: offset})
		}
		offset += len(data)
	}
	return p, nil
}

// ParseCSS parses a whole stylesheet.
func ParseCSS(source string) (StyleSheet, error) {
	p, err := NewParser(source)
	if err != nil {
		return StyleSheet{}, err
	}
	return p.Parse()
}

// Parse analyzes the token stream and builds a StyleSheet. The first error aborts
// the parse; no partial stylesheet is returned.
func (p *Parser) Parse() (StyleSheet, error) {
	var rules []Rule
	for {
		p.consumeWhitespace()
		if p.eof() {
			break
		}
		rule, err := p.parseRule()
		if err != nil {
			return StyleSheet{}, err
		}
		rules = append(rules, rule)
	}
	return StyleSheet{Rules: rules}, nil
}

func (p *Parser) parseRule() (Rule, error) {
	selectors, err := p.parseSelectors()
	if err != nil {
		return Rule{}, err
	}
	declarations, err := p.parseDeclarations()
	if err != nil {
		return Rule{}, err
	}
	return Rule{Selectors: selectors, Declarations: declarations}, nil
}

// parseSelectors parses a comma-separated selector list up to (not including) '{'.
func (p *Parser) parseSelectors() ([]SimpleSelector, error) {
	var selectors []SimpleSelector
	for {
		selector, err := p.parseSimpleSelector()
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, selector)

		p.consumeWhitespace()
		tok, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("%w: %w in selector list", ErrMalformedSelector, ErrUnexpectedEOF)
		}
		switch tok.tt {
		case css.CommaToken:
			p.next()
			p.consumeWhitespace()
		case css.LeftBraceToken:
			// Highest specificity first, for use in matching.
			sort.SliceStable(selectors, func(i, j int) bool {
				return selectors[j].Specificity().Less(selectors[i].Specificity())
			})
			return selectors, nil
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedSelector, tok.data, tok.offset)
		}
	}
}

// parseSimpleSelector parses a single selector component (e.g., div#id.class1.class2).
func (p *Parser) parseSimpleSelector() (SimpleSelector, error) {
	var selector SimpleSelector
	universal := false
	start, _ := p.peek()

	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		switch {
		case tok.tt == css.IdentToken:
			p.next()
			selector.TagName = tok.data
			continue
		case tok.tt == css.HashToken:
			p.next()
			selector.ID = strings.TrimPrefix(tok.data, "#")
			continue
		case tok.tt == css.DelimToken && tok.data == "*":
			p.next()
			universal = true
			continue
		case tok.tt == css.DelimToken && tok.data == ".":
			p.next()
			class, ok := p.peek()
			if !ok || class.tt != css.IdentToken {
				return SimpleSelector{}, fmt.Errorf("%w: expected class name after '.' at offset %d", ErrMalformedSelector, tok.offset)
			}
			p.next()
			selector.Classes = append(selector.Classes, class.data)
			continue
		}
		break
	}

	if !universal && selector.TagName == "" && selector.ID == "" && len(selector.Classes) == 0 {
		return SimpleSelector{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedSelector, start.data, start.offset)
	}
	return selector, nil
}

// parseDeclarations parses a list of declarations enclosed in { ... }.
func (p *Parser) parseDeclarations() ([]Declaration, error) {
	if tok, ok := p.next(); !ok || tok.tt != css.LeftBraceToken {
		return nil, fmt.Errorf("%w: expected '{'", ErrMalformedDeclaration)
	}

	var declarations []Declaration
	for {
		p.consumeWhitespace()
		tok, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("%w: %w inside declaration block", ErrMalformedDeclaration, ErrUnexpectedEOF)
		}
		if tok.tt == css.RightBraceToken {
			p.next()
			return declarations, nil
		}
		declaration, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, declaration)
	}
}

// parseDeclaration parses one `<property>: <value>;` declaration. The semicolon
// may be omitted before the closing brace.
func (p *Parser) parseDeclaration() (Declaration, error) {
	name, ok := p.next()
	if !ok || name.tt != css.IdentToken {
		return Declaration{}, fmt.Errorf("%w: expected property name at offset %d", ErrMalformedDeclaration, name.offset)
	}
	p.consumeWhitespace()
	if colon, ok := p.next(); !ok || colon.tt != css.ColonToken {
		return Declaration{}, fmt.Errorf("%w: expected ':' after %q", ErrMalformedDeclaration, name.data)
	}
	p.consumeWhitespace()

	value, err := p.parseValue()
	if err != nil {
		return Declaration{}, fmt.Errorf("property %q: %w", name.data, err)
	}

	p.consumeWhitespace()
	end, ok := p.peek()
	switch {
	case !ok:
		return Declaration{}, fmt.Errorf("%w: %w after %q", ErrMalformedDeclaration, ErrUnexpectedEOF, name.data)
	case end.tt == css.SemicolonToken:
		p.next()
	case end.tt == css.RightBraceToken:
	default:
		return Declaration{}, fmt.Errorf("%w: expected ';' after %q, got %q at offset %d", ErrMalformedDeclaration, name.data, end.data, end.offset)
	}
	return Declaration{Name: name.data, Value: value}, nil
}

func (p *Parser) parseValue() (Value, error) {
	tok, ok := p.next()
	if !ok {
		return Value{}, fmt.Errorf("%w: missing value", ErrUnexpectedEOF)
	}
	switch tok.tt {
	case css.IdentToken:
		return Keyword(tok.data), nil
	case css.DimensionToken:
		return parseLength(tok)
	case css.NumberToken:
		// CSS allows the unit to be omitted for zero lengths only.
		n, err := strconv.ParseFloat(tok.data, 32)
		if err != nil || n != 0 {
			return Value{}, fmt.Errorf("%w: %q has no unit", ErrUnrecognizedUnit, tok.data)
		}
		return Px(0), nil
	case css.PercentageToken:
		return Value{}, fmt.Errorf("%w: %q", ErrUnrecognizedUnit, tok.data)
	case css.HashToken:
		c, err := ParseHexColor(tok.data)
		if err != nil {
			return Value{}, err
		}
		return ColorOf(c), nil
	default:
		return Value{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedDeclaration, tok.data, tok.offset)
	}
}

// parseLength splits a dimension token such as "12.5px" into number and unit.
func parseLength(tok token) (Value, error) {
	split := strings.LastIndexAny(tok.data, "0123456789.") + 1
	number, unit := tok.data[:split], tok.data[split:]
	n, err := strconv.ParseFloat(number, 32)
	if err != nil {
		return Value{}, fmt.Errorf("%w: invalid number %q", ErrMalformedDeclaration, number)
	}
	switch strings.ToLower(unit) {
	case "px":
		return Px(float32(n)), nil
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrUnrecognizedUnit, unit)
	}
}

// ParseHexColor parses #rrggbb or #rgb. Alpha is always 255.
func ParseHexColor(hex string) (Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrMalformedColor, hex)
	}
	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrMalformedColor, hex)
	}
	return Color{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 255}, nil
}

// --- Token stream helpers ---

func (p *Parser) eof() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) peek() (token, bool) {
	if p.eof() {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) next() (token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *Parser) consumeWhitespace() {
	for !p.eof() && p.tokens[p.pos].tt == css.WhitespaceToken {
		p.pos++
	}
}
