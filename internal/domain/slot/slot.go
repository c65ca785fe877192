package slot

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrNotAvailable  = errors.New("slot is not available")
	ErrUnknownSlot   = errors.New("unknown slot")
	ErrEmptyOccupant = errors.New("occupant vehicle is required")
	ErrDuplicateSlot = errors.New("duplicate slot id")
)

// Slot is one fixed parking space. Occupant is non-empty iff the slot is unavailable.
type Slot struct {
	ID        string `json:"id"`
	Available bool   `json:"available"`
	Occupant  string `json:"occupant,omitempty"`
}

// Layout enumerates prefix1..prefixN, e.g. A1..A20.
func Layout(prefix string, count int) []string {
	ids := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		ids = append(ids, prefix+strconv.Itoa(i))
	}
	return ids
}

// Less orders ids by their letter prefix and then by the numeric suffix,
// so A6 sorts before A10. Ids that do not split cleanly compare as strings.
func Less(a, b string) bool {
	ap, an, aok := split(a)
	bp, bn, bok := split(b)
	if aok && bok {
		if ap != bp {
			return ap < bp
		}
		if an != bn {
			return an < bn
		}
	}
	return a < b
}

func split(id string) (prefix string, n int, ok bool) {
	i := strings.IndexFunc(id, unicode.IsDigit)
	if i < 0 {
		return id, 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return id, 0, false
	}
	return id[:i], n, true
}
