package tools

import (
	"fmt"
	"strconv"
)

// evaluateExpression evaluates a pure arithmetic expression over + - * / ( )
// and numeric literals with standard operator precedence. A hand-written
// recursive descent parser keeps the calculator closed over arithmetic: no
// expression, however crafted, can reach anything but these operators.
func evaluateExpression(expression string) (float64, error) {
	p := &exprParser{input: expression}

	value, err := p.parseSum()
	if err != nil {
		return 0, err
	}

	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected character %q at position %d", p.input[p.pos], p.pos)
	}

	return value, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}

	return p.input[p.pos], true
}

func (p *exprParser) parseSum() (float64, error) {
	value, err := p.parseProduct()
	if err != nil {
		return 0, err
	}

	for {
		op, ok := p.peek()
		if !ok || (op != '+' && op != '-') {
			return value, nil
		}

		p.pos++

		right, err := p.parseProduct()
		if err != nil {
			return 0, err
		}

		if op == '+' {
			value += right
		} else {
			value -= right
		}
	}
}

func (p *exprParser) parseProduct() (float64, error) {
	value, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		op, ok := p.peek()
		if !ok || (op != '*' && op != '/') {
			return value, nil
		}

		p.pos++

		right, err := p.parseFactor()
		if err != nil {
			return 0, err
		}

		if op == '*' {
			value *= right
		} else {
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}

			value /= right
		}
	}
}

func (p *exprParser) parseFactor() (float64, error) {
	ch, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("unexpected end of expression")
	}

	switch {
	case ch == '+':
		p.pos++
		return p.parseFactor()
	case ch == '-':
		p.pos++

		value, err := p.parseFactor()
		if err != nil {
			return 0, err
		}

		return -value, nil
	case ch == '(':
		p.pos++

		value, err := p.parseSum()
		if err != nil {
			return 0, err
		}

		closing, ok := p.peek()
		if !ok || closing != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}

		p.pos++

		return value, nil
	default:
		return p.parseNumber()
	}
}

func (p *exprParser) parseNumber() (float64, error) {
	p.skipSpaces()

	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}

	if start == p.pos {
		if p.pos < len(p.input) {
			return 0, fmt.Errorf("unexpected character %q at position %d", p.input[p.pos], p.pos)
		}

		return 0, fmt.Errorf("unexpected end of expression")
	}

	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}

	return value, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
