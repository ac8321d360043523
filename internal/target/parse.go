package target

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/korreman/sway-overfocus/internal/geometry"
)

// ErrEmptyCommand indicates no targets were given on the command line.
var ErrEmptyCommand = errors.New("no targets given")

// ErrBadTarget indicates a token did not match the `<kind>-<dir><edge>`
// grammar.
var ErrBadTarget = errors.New("malformed target")

var kindWords = map[string]Kind{
	"split":     KindSplit,
	"group":     KindGroup,
	"float":     KindFloat,
	"output":    KindOutput,
	"workspace": KindWorkspace,
}

var kindNames = []string{"split", "group", "float", "output", "workspace"}

var dirChars = map[byte]geometry.Direction{
	'u': geometry.Up,
	'd': geometry.Down,
	'l': geometry.Left,
	'r': geometry.Right,
}

var edgeChars = map[byte]Edge{
	's': EdgeStop,
	'w': EdgeWrap,
	'i': EdgeInactiveSpill,
	't': EdgeTraverseSpill,
}

// Parse parses a flat argv token list into an ordered list of Targets,
// per spec.md §4.1 and §6. defaultEdge is used for tokens that omit
// the trailing edge character (a SPEC_FULL.md relaxation of spec.md's
// grammar; every token the grammar requires still parses the same).
func Parse(tokens []string, defaultEdge Edge) ([]Target, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyCommand
	}

	targets := make([]Target, 0, len(tokens))
	for _, tok := range tokens {
		tg, err := parseOne(tok, defaultEdge)
		if err != nil {
			return nil, err
		}
		targets = append(targets, tg)
	}
	return targets, nil
}

func parseOne(tok string, defaultEdge Edge) (Target, error) {
	dash := -1
	for i := 0; i < len(tok); i++ {
		if tok[i] == '-' {
			dash = i
		}
	}
	if dash <= 0 || dash >= len(tok)-1 {
		return Target{}, badTarget(tok)
	}

	kindWord, rest := tok[:dash], tok[dash+1:]
	kind, ok := kindWords[kindWord]
	if !ok {
		return Target{}, badTarget(tok)
	}

	if len(rest) < 1 || len(rest) > 2 {
		return Target{}, badTarget(tok)
	}
	dir, ok := dirChars[rest[0]]
	if !ok {
		return Target{}, badTarget(tok)
	}

	edge := defaultEdge
	if len(rest) == 2 {
		e, ok := edgeChars[rest[1]]
		if !ok {
			return Target{}, badTarget(tok)
		}
		edge = e
	}

	return Target{Kind: kind, Direction: dir, Edge: edge}, nil
}

// badTarget builds ErrBadTarget, enriched with a fuzzy "did you mean"
// suggestion against the kind vocabulary when the token's prefix is
// close to a known kind word.
func badTarget(tok string) error {
	msg := fmt.Errorf("%w: %q", ErrBadTarget, tok)

	prefix := tok
	for i := len(tok) - 1; i >= 0; i-- {
		if tok[i] == '-' {
			prefix = tok[:i]
			break
		}
	}
	matches := fuzzy.Find(prefix, kindNames)
	if len(matches) == 0 {
		return msg
	}
	return fmt.Errorf("%w (did you mean a token starting with %q?)", msg, matches[0].Str)
}
