// Package delimset provides an immutable sorted set that round-trips
// to and from a compact delimited string, for carrying filter and
// selection state in URLs and query strings.
package delimset

import (
	"hash/fnv"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/anfomin/helperscore/strutil"
)

const DefaultDelimiter = '_'

var ErrNoValidTokens = errors.New("no tokens could be parsed")

// Codec translates between a single item and its canonical
// delimiter-free token, and supplies the total order the set sorts by.
type Codec[T comparable] interface {
	Format(item T) string
	Parse(token string) (T, error)
	Compare(a, b T) int
}

type (
	config struct {
		delimiter rune
	}

	Option func(*config)
)

// WithDelimiter overrides the separator character. The caller guarantees
// it never appears inside a token produced by the codec.
func WithDelimiter(r rune) Option {
	return func(c *config) {
		c.delimiter = r
	}
}

// Set is an immutable, sorted, deduplicated collection of items.
// Every operation that looks mutating returns a new Set. A Set never
// changes after construction, so it is safe to share between
// goroutines without synchronization.
type Set[T comparable] struct {
	codec     Codec[T]
	delimiter rune
	items     []T // ascending by codec.Compare, no duplicates
}

// New returns an empty set bound to the given codec.
func New[T comparable](codec Codec[T], options ...Option) Set[T] {
	cfg := config{delimiter: DefaultDelimiter}
	for _, o := range options {
		o(&cfg)
	}
	return Set[T]{codec: codec, delimiter: cfg.delimiter}
}

// Of builds a set from the given items. Duplicates collapse silently.
func Of[T comparable](codec Codec[T], items ...T) Set[T] {
	return FromSlice(codec, items)
}

// FromSlice builds a set from a possibly unsorted, possibly
// duplicate-containing slice. It never fails.
func FromSlice[T comparable](codec Codec[T], items []T, options ...Option) Set[T] {
	s := New(codec, options...)
	s.items = normalize(codec, items)
	return s
}

func normalize[T comparable](codec Codec[T], items []T) []T {
	if len(items) == 0 {
		return nil
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return codec.Compare(sorted[i], sorted[j]) < 0
	})

	result := sorted[:1]
	for _, item := range sorted[1:] {
		if codec.Compare(result[len(result)-1], item) != 0 {
			result = append(result, item)
		}
	}
	return result
}

func (s Set[T]) Len() int {
	return len(s.items)
}

func (s Set[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Items returns the set contents in ascending order. The returned
// slice is a copy and may be modified freely.
func (s Set[T]) Items() []T {
	if len(s.items) == 0 {
		return nil
	}
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

func (s Set[T]) Contains(item T) bool {
	i := sort.Search(len(s.items), func(i int) bool {
		return s.codec.Compare(s.items[i], item) >= 0
	})
	return i < len(s.items) && s.codec.Compare(s.items[i], item) == 0
}

// SubsetOf reports whether every item of s is contained in other.
func (s Set[T]) SubsetOf(other Set[T]) bool {
	if len(s.items) > len(other.items) {
		return false
	}

	i := 0
	for _, item := range s.items {
		for i < len(other.items) && s.codec.Compare(other.items[i], item) < 0 {
			i++
		}
		if i == len(other.items) || s.codec.Compare(other.items[i], item) != 0 {
			return false
		}
		i++
	}
	return true
}

func (s Set[T]) SupersetOf(other Set[T]) bool {
	return other.SubsetOf(s)
}

func (s Set[T]) ProperSubsetOf(other Set[T]) bool {
	return len(s.items) < len(other.items) && s.SubsetOf(other)
}

func (s Set[T]) ProperSupersetOf(other Set[T]) bool {
	return other.ProperSubsetOf(s)
}

// Overlaps reports whether s and other share at least one item.
func (s Set[T]) Overlaps(other Set[T]) bool {
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch c := s.codec.Compare(s.items[i], other.items[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			return true
		}
	}
	return false
}

// Equal reports set equality: same items regardless of how either
// set was constructed.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for i := range s.items {
		if s.codec.Compare(s.items[i], other.items[i]) != 0 {
			return false
		}
	}
	return true
}

// Hash is consistent with Equal: equal sets produce equal hashes.
func (s Set[T]) Hash() uint64 {
	h := fnv.New64a()
	encoded, _ := s.Encode()
	_, _ = h.Write([]byte(encoded))
	return h.Sum64()
}

// Encode returns the canonical delimited form and true, or ("", false)
// for the empty set so that query-string writers can omit the
// parameter entirely instead of emitting an empty value.
func (s Set[T]) Encode() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}

	var b strings.Builder
	for i, item := range s.items {
		if i > 0 {
			b.WriteRune(s.delimiter)
		}
		b.WriteString(s.codec.Format(item))
	}
	return b.String(), true
}

// String implements fmt.Stringer; the empty set renders as "".
func (s Set[T]) String() string {
	encoded, _ := s.Encode()
	return encoded
}

// EncodeSlice canonicalizes items (dedupe, sort) and joins them
// without building an intermediate set. Returns ("", false) when
// items is empty.
func EncodeSlice[T comparable](codec Codec[T], items []T, options ...Option) (string, bool) {
	return FromSlice(codec, items, options...).Encode()
}

// Parse is the strict decoder: every non-blank segment of input must
// parse, and the first failure aborts with the offending token in the
// error. Blank input yields an empty set.
func Parse[T comparable](codec Codec[T], input string, options ...Option) (Set[T], error) {
	s := New(codec, options...)

	segments := strutil.SplitNonBlank(input, s.delimiter)
	if len(segments) == 0 {
		return s, nil
	}

	items := make([]T, 0, len(segments))
	for _, token := range segments {
		item, err := codec.Parse(token)
		if err != nil {
			return New(codec, options...), errors.Wrapf(err, "cannot parse token %q", token)
		}
		items = append(items, item)
	}

	s.items = normalize(codec, items)
	return s, nil
}

// ParseLenient drops segments that fail to parse instead of aborting.
// The one exception: when input held at least one non-blank segment
// and every segment failed, it returns ErrNoValidTokens rather than
// an empty set, so a wholly garbled input is still caught.
func ParseLenient[T comparable](codec Codec[T], input string, options ...Option) (Set[T], error) {
	s := New(codec, options...)

	segments := strutil.SplitNonBlank(input, s.delimiter)
	if len(segments) == 0 {
		return s, nil
	}

	items := make([]T, 0, len(segments))
	for _, token := range segments {
		item, err := codec.Parse(token)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return s, ErrNoValidTokens
	}

	s.items = normalize(codec, items)
	return s, nil
}
