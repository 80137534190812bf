package dictionary

import "errors"

// Dictionary maps Japanese terms to English terms.
type Dictionary map[string]string

// ErrInvalidTerm is returned when an empty term is registered.
var ErrInvalidTerm = errors.New("term must not be empty")

// Snapshot is the read-only dictionary state used for one translation pass.
// General is base plus learned overlay; Care is the care-label dictionary.
type Snapshot struct {
	General Dictionary
	Care    Dictionary
}

// Clone returns a copy of the dictionary.
func (d Dictionary) Clone() Dictionary {
	out := make(Dictionary, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
