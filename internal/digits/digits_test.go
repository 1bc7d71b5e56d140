package digits

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"
)

func TestTrim(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0", "0"},
		{"000", "0"},
		{"007", "7"},
		{"700", "700"},
		{"1234567890", "1234567890"},
	}
	for _, c := range cases {
		if got := Trim(c.in); got != c.want {
			t.Errorf("Trim(%q): want %q, got %q", c.in, c.want, got)
		}
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", true},
		{"0123", true},
		{"1.5", false},
		{"-1", false},
		{"1a", false},
		{"١", false},
	}
	for _, c := range cases {
		if got := Valid(c.in); got != c.want {
			t.Errorf("Valid(%q): want %t, got %t", c.in, c.want, got)
		}
	}
}

func TestCmp(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"0", "000", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"10", "9", 1},
		{"009", "10", -1},
		{"123", "124", -1},
		{"124", "123", 1},
		{"99999999999999999999", "100000000000000000000", -1},
	}
	for _, c := range cases {
		if got := Cmp(c.a, c.b); got != c.want {
			t.Errorf("Cmp(%q, %q): want %d, got %d", c.a, c.b, c.want, got)
		}
	}
}

func TestAdd(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"1", "2", "3"},
		{"5", "5", "10"},
		{"999", "1", "1000"},
		{"1", "999", "1000"},
		{"007", "003", "10"},
		{"123456789012345678901234567890", "987654321098765432109876543210", "1111111110111111111011111111100"},
	}
	for _, c := range cases {
		if got := Add(c.a, c.b); got != c.want {
			t.Errorf("Add(%q, %q): want %q, got %q", c.a, c.b, c.want, got)
		}
	}
}

func TestSub(t *testing.T) {
	cases := []struct {
		a, b string
		want string
		neg  bool
	}{
		{"0", "0", "0", false},
		{"5", "5", "0", false},
		{"05", "5", "0", false},
		{"5", "3", "2", false},
		{"3", "5", "2", true},
		{"1000", "1", "999", false},
		{"1", "1000", "999", true},
		{"0003", "5", "2", true},
		{"100000000000000000000", "99999999999999999999", "1", false},
	}
	for _, c := range cases {
		got, neg := Sub(c.a, c.b)
		if got != c.want || neg != c.neg {
			t.Errorf("Sub(%q, %q): want %q, %t; got %q, %t", c.a, c.b, c.want, c.neg, got, neg)
		}
	}
}

func TestMul(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"0", "12345", "0"},
		{"12345", "0", "0"},
		{"000", "7", "0"},
		{"1", "1", "1"},
		{"9", "9", "81"},
		{"12", "34", "408"},
		{"101", "101", "10201"},
		{"999", "999", "998001"},
		{"1000", "1000", "1000000"},
		{"123456789", "987654321", "121932631112635269"},
	}
	for _, c := range cases {
		if got := Mul(c.a, c.b); got != c.want {
			t.Errorf("Mul(%q, %q): want %q, got %q", c.a, c.b, c.want, got)
		}
	}
}

func TestQuo(t *testing.T) {
	cases := []struct {
		a, b string
		prec int
		want string
	}{
		{"1", "3", 5, "0.33333"},
		{"1", "4", 10, "0.25"},
		{"10", "4", 50, "2.5"},
		{"10", "5", 50, "2"},
		{"0", "7", 50, "0"},
		{"7", "7", 50, "1"},
		{"7", "2", 0, "3"},
		{"2", "3", 3, "0.666"},
		{"1", "101", 2, "0"},
		{"1", "101", 4, "0.0099"},
		{"100", "8", 50, "12.5"},
		{"0010", "0004", 50, "2.5"},
		{"22", "7", 10, "3.1428571428"},
		{"123456789012345678901234567890", "3", 5, "41152263004115226300411522630"},
	}
	for _, c := range cases {
		got, err := Quo(c.a, c.b, c.prec)
		if err != nil {
			t.Errorf("Quo(%q, %q, %d): unexpected error %v", c.a, c.b, c.prec, err)
			continue
		}
		if got != c.want {
			t.Errorf("Quo(%q, %q, %d): want %q, got %q", c.a, c.b, c.prec, c.want, got)
		}
	}
}

func TestQuoHugePrec(t *testing.T) {
	got, err := Quo("1", "4", math.MaxInt)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != "0.25" {
		t.Errorf("want 0.25, got %q", got)
	}
}

func TestQuoZero(t *testing.T) {
	for _, b := range []string{"0", "000"} {
		_, err := Quo("12", b, 50)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Quo(12, %q): want ErrDivisionByZero, got %v", b, err)
		}
	}
}

// repeatedSub is long division by counting subtractions, one quotient digit at
// a time. Quo must produce exactly the same digits.
func repeatedSub(a, b string, prec int) string {
	var q strings.Builder
	rem := "0"
	digit := func() {
		n := 0
		for Cmp(rem, b) >= 0 {
			rem, _ = Sub(rem, b)
			n++
		}
		q.WriteByte(byte(n) + '0')
	}
	for i := 0; i < len(a); i++ {
		rem = Trim(rem + a[i:i+1])
		digit()
	}
	if rem != "0" && prec > 0 {
		q.WriteByte('.')
		for i := 0; i < prec && rem != "0"; i++ {
			rem = Trim(rem + "0")
			digit()
		}
	}
	s := q.String()
	if strings.Contains(s, ".") {
		s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	}
	s = strings.TrimLeft(s, "0")
	if s == "" || s[0] == '.' {
		s = "0" + s
	}
	return s
}

func randDigits(rng *rand.Rand, max int) string {
	n := 1 + rng.Intn(max)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Intn(10)) + '0'
	}
	return string(b)
}

func TestAgainstBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a, b := randDigits(rng, 40), randDigits(rng, 40)
		x, _ := new(big.Int).SetString(a, 10)
		y, _ := new(big.Int).SetString(b, 10)
		if got, want := Add(a, b), new(big.Int).Add(x, y).String(); got != want {
			t.Errorf("Add(%q, %q): want %q, got %q", a, b, want, got)
		}
		d := new(big.Int).Sub(x, y)
		got, neg := Sub(a, b)
		if want := new(big.Int).Abs(d).String(); got != want || neg != (d.Sign() < 0) {
			t.Errorf("Sub(%q, %q): want %q, %t; got %q, %t", a, b, want, d.Sign() < 0, got, neg)
		}
		if got, want := Mul(a, b), new(big.Int).Mul(x, y).String(); got != want {
			t.Errorf("Mul(%q, %q): want %q, got %q", a, b, want, got)
		}
		if y.Sign() == 0 {
			continue
		}
		q, err := Quo(a, b, 0)
		if err != nil {
			t.Fatalf("Quo(%q, %q, 0): %v", a, b, err)
		}
		if want := new(big.Int).Quo(x, y).String(); q != want {
			t.Errorf("Quo(%q, %q, 0): want %q, got %q", a, b, want, q)
		}
	}
}

func TestQuoMatchesRepeatedSubtraction(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a, b := randDigits(rng, 20), randDigits(rng, 6)
		if IsZero(b) {
			continue
		}
		prec := rng.Intn(30)
		got, err := Quo(a, b, prec)
		if err != nil {
			t.Fatalf("Quo(%q, %q, %d): %v", a, b, prec, err)
		}
		if want := repeatedSub(a, Trim(b), prec); got != want {
			t.Errorf("Quo(%q, %q, %d): want %q, got %q", a, b, prec, want, got)
		}
	}
}
