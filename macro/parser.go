package macro

import "fmt"

// rawArg is one parsed call argument before it's assigned into a
// specific Node field: either a nested macro (another Call/Sequence)
// or a plain Value (symbol name, number, string, or $var).
type rawArg struct {
	node  *Node
	value Value
	isSym bool // a bare identifier not followed by '(' — a symbol name
}

// parser turns macro source text into a Node tree. Parse errors name
// the rune index they were detected at in their message text.
type parser struct {
	lex *lexer
	tok token
	err error
}

// Parse compiles macro source text into a Node tree rooted at a Seq
// (or a single Node if the source is one call). A position named in
// the returned error is a rune index into src.
func Parse(src string) (*Node, error) {
	p := &parser{lex: newLexer(src)}

	if err := p.advance(); err != nil {
		return nil, err
	}

	root, err := p.parseSequence()
	if err != nil {
		return nil, err
	}

	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("position %d: unexpected trailing input %q", p.tok.pos, p.tok.text)
	}

	return root, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return fmt.Errorf("position %d: %w", p.lex.pos, err)
	}

	p.tok = tok

	return nil
}

func (p *parser) parseSequence() (*Node, error) {
	first, err := p.parseCall()
	if err != nil {
		return nil, err
	}

	if p.tok.kind != tokDot {
		return first, nil
	}

	children := []*Node{first}

	for p.tok.kind == tokDot {
		if err := p.advance(); err != nil {
			return nil, err
		}

		next, err := p.parseCall()
		if err != nil {
			return nil, err
		}

		children = append(children, next)
	}

	return &Node{Kind: Seq, Children: children}, nil
}

func (p *parser) parseCall() (*Node, error) {
	if p.tok.kind != tokIdent {
		return nil, fmt.Errorf("position %d: expected a macro function name", p.tok.pos)
	}

	name := p.tok.text
	pos := p.tok.pos

	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.tok.kind != tokLParen {
		return nil, fmt.Errorf("position %d: expected '(' after %q", p.tok.pos, name)
	}

	if err := p.advance(); err != nil {
		return nil, err
	}

	var args []rawArg

	if p.tok.kind != tokRParen {
		for {
			arg, err := p.parseArg()
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			if p.tok.kind != tokComma {
				break
			}

			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if p.tok.kind != tokRParen {
		return nil, fmt.Errorf("position %d: expected ')' to close %q", p.tok.pos, name)
	}

	if err := p.advance(); err != nil {
		return nil, err
	}

	return build(name, pos, args)
}

// parseArg parses one call argument: a nested call (possibly chained
// with '.'), a $var reference, a number, a string, or a bare
// identifier treated as a symbol name.
func (p *parser) parseArg() (rawArg, error) {
	switch p.tok.kind {
	case tokDollar:
		if err := p.advance(); err != nil {
			return rawArg{}, err
		}

		if p.tok.kind != tokIdent {
			return rawArg{}, fmt.Errorf("position %d: expected a variable name after '$'", p.tok.pos)
		}

		name := p.tok.text

		if err := p.advance(); err != nil {
			return rawArg{}, err
		}

		return rawArg{value: VarValue(name)}, nil

	case tokNumber:
		n, err := parseInt(p.tok.text)
		if err != nil {
			return rawArg{}, fmt.Errorf("position %d: %w", p.tok.pos, err)
		}

		if err := p.advance(); err != nil {
			return rawArg{}, err
		}

		return rawArg{value: IntValue(n)}, nil

	case tokString:
		s := p.tok.text

		if err := p.advance(); err != nil {
			return rawArg{}, err
		}

		return rawArg{value: StringValue(s)}, nil

	case tokIdent:
		// Lookahead: if this identifier is followed by '(', it's a
		// nested macro call; otherwise it's a bare symbol name.
		save := *p.lex
		saveTok := p.tok

		if err := p.advance(); err != nil {
			return rawArg{}, err
		}

		if p.tok.kind == tokLParen {
			*p.lex = save
			p.tok = saveTok

			seq, err := p.parseSequence()
			if err != nil {
				return rawArg{}, err
			}

			return rawArg{node: seq}, nil
		}

		return rawArg{value: StringValue(saveTok.text), isSym: true}, nil

	default:
		return rawArg{}, fmt.Errorf("position %d: unexpected token in argument list", p.tok.pos)
	}
}
