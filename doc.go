// Package bigcalc implements an arbitrary-precision decimal calculator.
//
// Numbers are strings of decimal digits with at most one point, and they may
// be of any length. Addition, subtraction, and multiplication are exact.
// Division produces a fixed number of fractional digits (DefaultPrec unless
// changed with Prec) and truncates the rest, stopping early when the division
// is exact.
//
// Expressions use the four operators + - * / and parentheses, e.g.
// "(2 + 3) * 4.5". There is no unary minus and no scientific notation, but
// results may be negative: "1 - 2" is "-1". Whitespace is ignored everywhere,
// including inside numbers, so "1 2 . 5" is 12.5.
package bigcalc
