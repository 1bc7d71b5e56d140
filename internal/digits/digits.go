// Package digits implements unsigned arithmetic on strings of ASCII decimal
// digits of any length. Inputs may carry leading zeros; results never do,
// except for the single digit "0".
package digits

import (
	"errors"
	"strings"
)

// ErrDivisionByZero is returned by Quo when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Valid reports whether s is a non-empty string of ASCII digits.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Trim removes leading zeros from s. The result is "0" if nothing else
// remains.
func Trim(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// IsZero reports whether s represents zero.
func IsZero(s string) bool {
	return strings.TrimLeft(s, "0") == ""
}

// Cmp compares the magnitudes of a and b and returns -1, 0, or +1.
func Cmp(a, b string) int {
	a, b = Trim(a), Trim(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	// Same length, so lexical order is numeric order.
	return strings.Compare(a, b)
}

// Add returns a+b.
func Add(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}
	r := make([]byte, len(a)+1)
	var carry byte
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		s := a[i] - '0' + carry
		if j >= 0 {
			s += b[j] - '0'
		}
		carry = s / 10
		r[i+1] = s%10 + '0'
	}
	r[0] = carry + '0'
	return trim(r)
}

// Sub returns |a-b| along with whether a-b is negative.
func Sub(a, b string) (string, bool) {
	if a == b {
		return "0", false
	}
	a, b = Trim(a), Trim(b)
	switch Cmp(a, b) {
	case 0:
		return "0", false
	case -1:
		return sub(b, a), true
	default:
		return sub(a, b), false
	}
}

// sub returns a-b. a and b must be trimmed and a must be at least b.
func sub(a, b string) string {
	r := make([]byte, len(a))
	borrow := 0
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		d := int(a[i]-'0') - borrow
		if j >= 0 {
			d -= int(b[j] - '0')
		}
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		r[i] = byte(d) + '0'
	}
	return trim(r)
}

// Mul returns a*b.
func Mul(a, b string) string {
	a, b = Trim(a), Trim(b)
	if a == "0" || b == "0" {
		return "0"
	}
	acc := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		x := int(a[i] - '0')
		if x == 0 {
			continue
		}
		for j := len(b) - 1; j >= 0; j-- {
			k := i + j + 1
			acc[k] += x * int(b[j]-'0')
			acc[k-1] += acc[k] / 10
			acc[k] %= 10
		}
	}
	// Rows skipped for zero digits can leave a position above 9.
	for k := len(acc) - 1; k > 0; k-- {
		acc[k-1] += acc[k] / 10
		acc[k] %= 10
	}
	r := make([]byte, len(acc))
	for i, d := range acc {
		r[i] = byte(d) + '0'
	}
	return trim(r)
}

// Quo returns a/b with at most prec digits after the decimal point. Further
// digits are truncated. The point appears only when a nonzero remainder
// produced at least one nonzero fractional digit, and the fraction never ends
// in zero.
func Quo(a, b string, prec int) (string, error) {
	b = Trim(b)
	if b == "0" {
		return "", ErrDivisionByZero
	}
	a = Trim(a)
	m := multiples(b)
	q := make([]byte, 0, len(a)+1)
	rem := "0"
	var d byte
	for i := 0; i < len(a); i++ {
		d, rem = m.step(rem + a[i:i+1])
		q = append(q, d+'0')
	}
	if rem != "0" && prec > 0 {
		q = append(q, '.')
		for i := 0; i < prec; i++ {
			d, rem = m.step(rem + "0")
			q = append(q, d+'0')
			if rem == "0" {
				break
			}
		}
	}
	s := trim(q)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s, nil
}

// table holds the divisor multiplied by each decimal digit.
type table [10]string

func multiples(b string) *table {
	var m table
	m[0] = "0"
	for d := 1; d < len(m); d++ {
		m[d] = Add(m[d-1], b)
	}
	return &m
}

// step produces one quotient digit: the largest d with d*b <= rem, along with
// the new remainder rem - d*b. This gives the same digit as subtracting b
// from rem until rem < b.
func (m *table) step(rem string) (byte, string) {
	rem = Trim(rem)
	for d := len(m) - 1; d > 0; d-- {
		if Cmp(m[d], rem) <= 0 {
			return byte(d), sub(rem, m[d])
		}
	}
	return 0, rem
}

// trim converts r to a string without leading zeros in its integer part.
func trim(r []byte) string {
	i := 0
	for i < len(r)-1 && r[i] == '0' && r[i+1] != '.' {
		i++
	}
	return string(r[i:])
}
