package legacy

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unknown is the label of codes outside an enum table.
const Unknown = "Unknown"

// Enum is the fixed code to label table of one coded column.
type Enum[T ~string] struct {
	labels map[T]string
	derive func(code T) string
}

// NewEnum returns an Enum resolving unknown codes to fallback.
func NewEnum[T ~string](fallback string, labels map[T]string) Enum[T] {
	return Enum[T]{
		labels: labels,
		derive: func(T) string { return fallback },
	}
}

// NewDerivedEnum returns an Enum computing the label of unknown codes with derive.
func NewDerivedEnum[T ~string](labels map[T]string, derive func(code T) string) Enum[T] {
	return Enum[T]{
		labels: labels,
		derive: derive,
	}
}

// Label returns the label of code.
func (e Enum[T]) Label(code T) string {
	if label, ok := e.labels[code]; ok {
		return label
	}

	if e.derive == nil {
		return Unknown
	}

	return e.derive(code)
}

// Known reports whether code is part of the table.
func (e Enum[T]) Known(code T) bool {
	_, ok := e.labels[code]
	return ok
}

// Codes returns the table codes in ascending order.
func (e Enum[T]) Codes() []T {
	codes := make([]T, 0, len(e.labels))
	for code := range e.labels {
		codes = append(codes, code)
	}

	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	return codes
}

// Humanize turns a snake_case code into a sentence: "made_up" becomes "Made up".
func Humanize(code string) string {
	s := strings.TrimSpace(strings.ReplaceAll(code, "_", " "))
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}
