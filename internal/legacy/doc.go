// Package legacy adapts the column shapes of the WoWonder MySQL schema to typed Go values.
//
// The legacy tables store timestamps as decimal strings of Unix seconds and small state
// sets as one-character codes. Every adapter in this package keeps two representations
// of such a column:
//   - the as-stored form (Raw, driver.Valuer) that is written back unchanged
//   - the display form (time.Time, bool, label) consumed by the admin API
//
// # Epoch
//
// Epoch is a string-typed Unix timestamp. NewEpoch keeps numeric input in its string
// form and substitutes the current time for anything else, which is what models rely on
// to populate creation times the caller left empty.
//
// # Flag
//
// Flag is a "0"/"1" column. NormalizeFlag maps any truthy input to "1" and any falsy
// input to "0" and is idempotent.
//
// # Enum
//
// Enum maps codes of one column to labels. Codes outside the table resolve to a
// fallback label and never fail.
package legacy
