package delimset

import (
	"bytes"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

type integerCodec[T constraints.Signed] struct{}

// Integer returns a codec for signed integer types, including
// integer-backed enumeration types. Tokens are decimal strings of the
// underlying value in both directions, so Parse(Format(v)) always
// round-trips and renaming a constant never breaks stored strings.
func Integer[T constraints.Signed]() Codec[T] {
	return integerCodec[T]{}
}

func (integerCodec[T]) Format(item T) string {
	return strconv.FormatInt(int64(item), 10)
}

func (integerCodec[T]) Parse(token string) (T, error) {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		var zero T
		return zero, err
	}

	item := T(n)
	if int64(item) != n {
		var zero T
		return zero, errors.Errorf("value %d overflows %T", n, zero)
	}
	return item, nil
}

func (integerCodec[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

type unsignedCodec[T constraints.Unsigned] struct{}

// Unsigned returns a codec for unsigned integer types.
func Unsigned[T constraints.Unsigned]() Codec[T] {
	return unsignedCodec[T]{}
}

func (unsignedCodec[T]) Format(item T) string {
	return strconv.FormatUint(uint64(item), 10)
}

func (unsignedCodec[T]) Parse(token string) (T, error) {
	n, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		var zero T
		return zero, err
	}

	item := T(n)
	if uint64(item) != n {
		var zero T
		return zero, errors.Errorf("value %d overflows %T", n, zero)
	}
	return item, nil
}

func (unsignedCodec[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

type floatCodec[T constraints.Float] struct{}

// Float returns a codec for floating point types. Tokens use the
// shortest form that round-trips.
func Float[T constraints.Float]() Codec[T] {
	return floatCodec[T]{}
}

func (floatCodec[T]) bitSize() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}
	return 64
}

func (c floatCodec[T]) Format(item T) string {
	return strconv.FormatFloat(float64(item), 'g', -1, c.bitSize())
}

func (c floatCodec[T]) Parse(token string) (T, error) {
	f, err := strconv.ParseFloat(token, c.bitSize())
	if err != nil {
		var zero T
		return zero, err
	}
	return T(f), nil
}

func (floatCodec[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

type uuidCodec struct{}

// UUID returns a codec for google/uuid values, using the canonical
// hyphenated form. Ordering is lexicographic over the raw bytes.
func UUID() Codec[uuid.UUID] {
	return uuidCodec{}
}

func (uuidCodec) Format(item uuid.UUID) string {
	return item.String()
}

func (uuidCodec) Parse(token string) (uuid.UUID, error) {
	return uuid.Parse(token)
}

func (uuidCodec) Compare(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

type decimalCodec struct{}

// Decimal returns a codec for shopspring decimals, using the type's
// own canonical string form.
func Decimal() Codec[decimal.Decimal] {
	return decimalCodec{}
}

func (decimalCodec) Format(item decimal.Decimal) string {
	return item.String()
}

func (decimalCodec) Parse(token string) (decimal.Decimal, error) {
	return decimal.NewFromString(token)
}

func (decimalCodec) Compare(a, b decimal.Decimal) int {
	return a.Cmp(b)
}
