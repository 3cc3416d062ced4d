package record

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence hands out ids of the form PREFIX-NNN. It only moves forward, so
// ids stay unique even if records are removed from a collection.
type Sequence struct {
	Prefix string
	last   int
}

// NewSequence starts a sequence after the highest suffix found in ids that
// carry the same prefix, or after last when that is higher.
func NewSequence(prefix string, last int, ids ...string) *Sequence {
	s := &Sequence{Prefix: prefix, last: last}
	for _, id := range ids {
		if p, n, ok := ParseID(id); ok && p == prefix && n > s.last {
			s.last = n
		}
	}
	return s
}

func (s *Sequence) Next() string {
	s.last++
	return FormatID(s.Prefix, s.last)
}

func (s *Sequence) Last() int { return s.last }

func FormatID(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}

// ParseID splits an id into prefix and numeric suffix.
func ParseID(id string) (string, int, bool) {
	i := strings.LastIndex(id, "-")
	if i <= 0 || i == len(id)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n < 0 {
		return "", 0, false
	}
	return id[:i], n, true
}
