package bigcalc

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Option is an option used when evaluating an expression.
type Option interface {
	evalOption()
}

type precopt uint

func (precopt) evalOption() {}

// Prec sets the number of fractional digits produced by each division before
// the rest are truncated. The default is DefaultPrec.
func Prec(digits uint) Option {
	return precopt(digits)
}

// machine holds the state for evaluating one expression: a stack of values
// and a stack of pending operators and open parentheses.
type machine struct {
	vals []dec
	ops  []lexToken
	prec int
}

// Eval evaluates an infix expression of decimal numbers, the operators
// + - * /, and parentheses, and returns the result as a decimal string.
// Multiplication and division bind more tightly than addition and
// subtraction, and operators of equal precedence associate to the left.
//
// Each call owns all of its state, so Eval is safe to call concurrently.
// If the input is invalid, the error is an InputError.
func Eval(src io.RuneScanner, opts ...Option) (string, error) {
	m := machine{prec: DefaultPrec}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case precopt:
			m.prec = math.MaxInt
			if uint(opt) < math.MaxInt {
				m.prec = int(opt)
			}
		default:
			panic("bigcalc: unknown option type")
		}
	}
	toks, err := tokenize(src)
	if err != nil {
		return "", err
	}
	r, err := m.run(toks)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string, opts ...Option) (string, error) {
	return Eval(strings.NewReader(src), opts...)
}

// run consumes the token sequence and returns the single resulting value.
func (m *machine) run(toks []lexToken) (dec, error) {
	var end lexToken
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			d, ok := parseDec(tok.text)
			if !ok {
				panic("bigcalc: lexed invalid number " + strconv.Quote(tok.text))
			}
			m.vals = append(m.vals, d)
		case tokenOpen:
			m.ops = append(m.ops, tok)
		case tokenClose:
			if err := m.close(tok); err != nil {
				return dec{}, err
			}
		case tokenOp:
			p := precedence(tok.text)
			for len(m.ops) > 0 && m.top().kind == tokenOp && precedence(m.top().text) >= p {
				if err := m.reduce(); err != nil {
					return dec{}, err
				}
			}
			m.ops = append(m.ops, tok)
		case tokenEOF:
			end = tok
		default:
			panic("bigcalc: unknown token: " + tok.String())
		}
	}
	for len(m.ops) > 0 {
		if top := m.top(); top.kind == tokenOpen {
			return dec{}, &BracketError{Col: top.pos, Left: top.text}
		}
		if err := m.reduce(); err != nil {
			return dec{}, err
		}
	}
	if len(m.vals) != 1 {
		return dec{}, &ExpressionError{Col: end.pos, Values: len(m.vals)}
	}
	return m.vals[0], nil
}

// top returns the operator on top of the stack.
func (m *machine) top() lexToken {
	return m.ops[len(m.ops)-1]
}

// close applies operators back to the nearest open parenthesis and discards
// it.
func (m *machine) close(tok lexToken) error {
	for {
		if len(m.ops) == 0 {
			return &BracketError{Col: tok.pos, Right: tok.text}
		}
		if m.top().kind == tokenOpen {
			m.ops = m.ops[:len(m.ops)-1]
			return nil
		}
		if err := m.reduce(); err != nil {
			return err
		}
	}
}

// reduce pops an operator and two values and pushes the result of applying
// the operator. The value pushed later is the right operand.
func (m *machine) reduce() error {
	op := m.top()
	m.ops = m.ops[:len(m.ops)-1]
	n := len(m.vals)
	if n < 2 {
		return &ExpressionError{Col: op.pos, Op: op.text, Values: n}
	}
	a, b := m.vals[n-2], m.vals[n-1]
	m.vals = m.vals[:n-2]
	r, err := apply(a, op, b, m.prec)
	if err != nil {
		return err
	}
	m.vals = append(m.vals, r)
	return nil
}

// apply computes a op b.
func apply(a dec, op lexToken, b dec, prec int) (dec, error) {
	switch op.text {
	case "+":
		return a.add(b), nil
	case "-":
		return a.sub(b), nil
	case "*":
		return a.mul(b), nil
	case "/":
		r, err := a.quo(b, prec)
		if de, _ := err.(*DivisionError); de != nil {
			de.Col = op.pos
		}
		return r, err
	default:
		return dec{}, &OperatorError{Col: op.pos, Operator: op.text}
	}
}

// precedence gives the binding strength of a binary operator. Higher binds
// more tightly. Anything that is not an operator has precedence 0.
func precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return 0
	}
}
