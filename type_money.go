package drivelog

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of every amount in the logbook.
// The original application targets Brazilian drivers, all amounts are reais.
const DefaultCurrency = "BRL"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	default:
		panic("unsupported decimal source type")
	}
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// BRL returns a Money in the logbook's default currency.
func BRL[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return M(value, DefaultCurrency)
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = DefaultCurrency
	}
	return *money.New(0, cur).Currency()
}

// String returns the display representation, e.g. "R$150.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Share returns the given percentage of m, e.g. m.Share(10) is a tenth of m.
func (m Money) Share(p Percent) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(float64(p))).Div(decimal.NewFromInt(100)), cur: m.cur}
}

// Div returns m divided by n. n must not be zero, callers own the zero guard.
func (m Money) Div(n float64) Money {
	return Money{value: m.value.Div(decimal.NewFromFloat(n)), cur: m.cur}
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// AsFloat returns the value as a float64, for ratio computations only;
// amounts stay decimal-exact everywhere else.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Plain returns the bare decimal amount with two digits and no currency
// symbol, the form used in CSV exports.
func (m Money) Plain() string { return m.value.StringFixed(2) }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON writes the amount as a bare number rounded to the currency
// fraction, matching the persisted payload shape.
func (m Money) MarshalJSON() ([]byte, error) {
	decimal.MarshalJSONWithoutQuotes = true
	rounded := m.value.Round(int32(m.currency().Fraction))
	return rounded.MarshalJSON()
}

// UnmarshalJSON reads a bare number as an amount in the default currency.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = Money{value: d, cur: DefaultCurrency}
	return nil
}
