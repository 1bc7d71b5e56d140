package bigcalc

import (
	"errors"
	"strings"

	"github.com/zephyrtronium/bigcalc/internal/digits"
)

// DefaultPrec is the number of fractional digits a division produces before
// the remaining digits are truncated.
const DefaultPrec = 50

// dec is a signed decimal with the value mant × 10^-scale.
type dec struct {
	neg bool
	// mant is the digits of the value with the point removed.
	mant  string
	scale int
}

// mkdec creates a dec, clearing the sign of zero.
func mkdec(neg bool, mant string, scale int) dec {
	mant = digits.Trim(mant)
	return dec{neg: neg && mant != "0", mant: mant, scale: scale}
}

// parseDec parses a decimal string with an optional leading sign. If there is
// a point, there must be digits on both sides of it.
func parseDec(s string) (dec, bool) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	ip, fp, ok := strings.Cut(s, ".")
	if !digits.Valid(ip) || ok && !digits.Valid(fp) {
		return dec{}, false
	}
	return mkdec(neg, ip+fp, len(fp)), true
}

// String formats d with no leading zeros in its integer part and no trailing
// zeros in its fraction.
func (d dec) String() string {
	s := point(d.mant, d.scale)
	if d.neg && s != "0" {
		return "-" + s
	}
	return s
}

// align pads the shorter fraction of x and y with zeros so that both share
// one scale, and returns their point-free digit strings along with that scale.
func align(x, y dec) (a, b string, scale int) {
	a, b, scale = x.mant, y.mant, x.scale
	switch {
	case x.scale < y.scale:
		a += strings.Repeat("0", y.scale-x.scale)
		scale = y.scale
	case x.scale > y.scale:
		b += strings.Repeat("0", x.scale-y.scale)
	}
	return a, b, scale
}

// point inserts a decimal point scale digits from the right of mant. The
// result has no leading zeros before the point and no trailing zeros after
// it, and the point is omitted if nothing nonzero follows it.
func point(mant string, scale int) string {
	mant = digits.Trim(mant)
	if scale <= 0 {
		return mant
	}
	if len(mant) <= scale {
		mant = strings.Repeat("0", scale-len(mant)+1) + mant
	}
	k := len(mant) - scale
	ip, fp := mant[:k], strings.TrimRight(mant[k:], "0")
	if fp == "" {
		return ip
	}
	return ip + "." + fp
}

func (x dec) add(y dec) dec {
	a, b, scale := align(x, y)
	if x.neg == y.neg {
		return mkdec(x.neg, digits.Add(a, b), scale)
	}
	m, swapped := digits.Sub(a, b)
	return mkdec(x.neg != swapped, m, scale)
}

func (x dec) sub(y dec) dec {
	y.neg = !y.neg
	return x.add(y)
}

func (x dec) mul(y dec) dec {
	return mkdec(x.neg != y.neg, digits.Mul(x.mant, y.mant), x.scale+y.scale)
}

// quo divides x by y. Both are brought to the same scale so that it cancels,
// leaving the point placed by the integer division.
func (x dec) quo(y dec, prec int) (dec, error) {
	a, b, _ := align(x, y)
	q, err := digits.Quo(a, b, prec)
	if err != nil {
		if errors.Is(err, digits.ErrDivisionByZero) {
			return dec{}, &DivisionError{Dividend: x.String()}
		}
		return dec{}, err
	}
	r, ok := parseDec(q)
	if !ok {
		panic("bigcalc: invalid quotient " + q)
	}
	r.neg = x.neg != y.neg && r.mant != "0"
	return r, nil
}

// binary parses a and b and applies f to them.
func binary(a, b string, f func(x, y dec) (dec, error)) (string, error) {
	x, ok := parseDec(a)
	if !ok {
		return "", &NumberError{Num: a}
	}
	y, ok := parseDec(b)
	if !ok {
		return "", &NumberError{Num: b}
	}
	r, err := f(x, y)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// Add returns a+b. The operands are decimal strings, each optionally preceded
// by a sign.
func Add(a, b string) (string, error) {
	return binary(a, b, func(x, y dec) (dec, error) { return x.add(y), nil })
}

// Sub returns a-b.
func Sub(a, b string) (string, error) {
	return binary(a, b, func(x, y dec) (dec, error) { return x.sub(y), nil })
}

// Mul returns a*b.
func Mul(a, b string) (string, error) {
	return binary(a, b, func(x, y dec) (dec, error) { return x.mul(y), nil })
}

// Quo returns a/b truncated toward zero after prec fractional digits. Fewer
// digits are produced when the division is exact sooner. If b is zero, the
// error is a *DivisionError.
func Quo(a, b string, prec int) (string, error) {
	if prec < 0 {
		prec = 0
	}
	return binary(a, b, func(x, y dec) (dec, error) { return x.quo(y, prec) })
}

// Normalize removes leading zeros from the integer part of a decimal string
// and trailing zeros from its fraction, dropping the point and the sign of
// zero where they no longer carry information.
func Normalize(s string) (string, error) {
	d, ok := parseDec(s)
	if !ok {
		return "", &NumberError{Num: s}
	}
	return d.String(), nil
}
