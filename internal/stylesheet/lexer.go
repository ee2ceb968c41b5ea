// Package stylesheet extracts custom property declarations and class
// selectors from CSS source using the tdewolff CSS lexer.
package stylesheet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is a "--name: value" custom property declaration.
type Declaration struct {
	Name  string // "--main-color"
	Value string // "#ff0000"
}

// Sheet holds what was found in one stylesheet, in source order.
type Sheet struct {
	Variables []Declaration
	Classes   []string // ".btn", ".card" (deduplicated)
}

// lexerState maintains context while walking the token stream
type lexerState struct {
	lexer   *css.Lexer
	sheet   *Sheet
	seen    map[string]bool
	pending *token // one token of lookahead pushed back by a reader
}

type token struct {
	tt   css.TokenType
	text string
}

// Parse walks content and returns its custom properties and class selectors.
// Class selectors are only collected outside declaration values, so numbers
// such as "1.5rem" never produce classes.
func Parse(content string) (*Sheet, error) {
	s := &lexerState{
		lexer: css.NewLexer(parse.NewInputString(content)),
		sheet: &Sheet{},
		seen:  make(map[string]bool),
	}

	for {
		tok := s.next()
		if tok.tt == css.ErrorToken {
			break
		}

		switch {
		case isCustomPropertyName(tok):
			s.handleCustomProperty(tok.text)

		case tok.tt == css.DelimToken && tok.text == ".":
			// A class selector is a '.' immediately followed by an identifier
			next := s.next()
			if next.tt == css.IdentToken {
				s.addClass("." + next.text)
				continue
			}
			s.pushBack(next)
		}
	}

	if err := s.lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
		return s.sheet, fmt.Errorf("lex css: %w", err)
	}
	return s.sheet, nil
}

// ParseFile reads and parses a single CSS file.
func ParseFile(path string) (*Sheet, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(string(content))
}

func (s *lexerState) next() token {
	if s.pending != nil {
		tok := *s.pending
		s.pending = nil
		return tok
	}
	tt, text := s.lexer.Next()
	return token{tt: tt, text: string(text)}
}

func (s *lexerState) pushBack(tok token) {
	s.pending = &tok
}

// nextSignificant skips whitespace and comments.
func (s *lexerState) nextSignificant() token {
	for {
		tok := s.next()
		if tok.tt != css.WhitespaceToken && tok.tt != css.CommentToken {
			return tok
		}
	}
}

func isCustomPropertyName(tok token) bool {
	if tok.tt != css.CustomPropertyNameToken && tok.tt != css.IdentToken {
		return false
	}
	return strings.HasPrefix(tok.text, "--") && len(tok.text) > 2
}

// handleCustomProperty reads ": value" after a custom property name. Names
// not followed by a colon (var(--x) references) are ignored.
func (s *lexerState) handleCustomProperty(name string) {
	tok := s.nextSignificant()
	if tok.tt != css.ColonToken {
		s.pushBack(tok)
		return
	}

	var value strings.Builder
	depth := 0
	for {
		tok := s.next()
		switch tok.tt {
		case css.ErrorToken:
			s.addVariable(name, value.String())
			return
		case css.LeftParenthesisToken, css.FunctionToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.SemicolonToken, css.RightBraceToken, css.LeftBraceToken:
			if depth <= 0 {
				if tok.tt != css.SemicolonToken {
					s.pushBack(tok)
				}
				s.addVariable(name, value.String())
				return
			}
		}
		value.WriteString(tok.text)
	}
}

func (s *lexerState) addVariable(name, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	for i := range s.sheet.Variables {
		if s.sheet.Variables[i].Name == name {
			s.sheet.Variables[i].Value = value
			return
		}
	}
	s.sheet.Variables = append(s.sheet.Variables, Declaration{Name: name, Value: value})
}

func (s *lexerState) addClass(class string) {
	if s.seen[class] {
		return
	}
	s.seen[class] = true
	s.sheet.Classes = append(s.sheet.Classes, class)
}
