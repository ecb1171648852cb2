package view

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type SearchMode int

const (
	SearchHex SearchMode = iota
	SearchASCII
)

func (m SearchMode) String() string {
	if m == SearchASCII {
		return "ascii"
	}
	return "hex"
}

func ParseSearchMode(mode string) (SearchMode, error) {
	switch strings.ToLower(mode) {
	case "hex", "":
		return SearchHex, nil
	case "ascii":
		return SearchASCII, nil
	}
	return SearchHex, fmt.Errorf("%w: '%s'", ErrInvalidSearchMode, mode)
}

// ParseQuery converts a query to the byte sequence to search for. In hex
// mode the query is a space separated list of byte values; tokens that are
// not a byte in base 16 are dropped.
func ParseQuery(query string, mode SearchMode) []byte {
	if mode == SearchASCII {
		return []byte(query)
	}
	var pattern []byte
	for _, token := range strings.Split(strings.ToUpper(query), " ") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		value, err := strconv.ParseUint(token, 16, 8)
		if err != nil {
			log.Debug().Str("token", token).Msg("ignoring query token")
			continue
		}
		pattern = append(pattern, byte(value))
	}
	return pattern
}

// Search finds every occurrence of the query, overlapping ones included,
// and resets the current match.
func (v *Viewer) Search(query string, mode SearchMode) []Match {
	pattern := ParseQuery(query, mode)
	v.matches = nil
	v.current = -1
	if len(pattern) == 0 || len(v.data) == 0 {
		return v.matches
	}
	for i := 0; i+len(pattern) <= len(v.data); {
		found := bytes.Index(v.data[i:], pattern)
		if found < 0 {
			break
		}
		v.matches = append(v.matches, Match{Start: i + found, Length: len(pattern)})
		i += found + 1
	}
	log.Debug().Str("query", query).Stringer("mode", mode).Int("matches", len(v.matches)).Msg("search")
	return v.matches
}

func (v *Viewer) Matches() []Match {
	return v.matches
}

func (v *Viewer) IsHighlighted(pos Position) bool {
	index := pos.Index()
	for _, m := range v.matches {
		if m.Start > index {
			break
		}
		if m.Contains(index) {
			return true
		}
	}
	return false
}

// CurrentMatch returns the index of the current match, -1 when none is set.
func (v *Viewer) CurrentMatch() int {
	return v.current
}

func (v *Viewer) NextMatch() (Match, bool) {
	if len(v.matches) == 0 {
		return Match{}, false
	}
	next := 0
	if v.current >= 0 {
		next = (v.current + 1) % len(v.matches)
	}
	return v.goToMatch(next), true
}

func (v *Viewer) PrevMatch() (Match, bool) {
	if len(v.matches) == 0 {
		return Match{}, false
	}
	prev := len(v.matches) - 1
	if v.current >= 0 {
		prev = (v.current - 1 + len(v.matches)) % len(v.matches)
	}
	return v.goToMatch(prev), true
}

func (v *Viewer) goToMatch(index int) Match {
	m := v.matches[index]
	v.current = index
	v.Select(PositionOf(m.Start))
	v.Extend(PositionOf(m.End()))
	return m
}
