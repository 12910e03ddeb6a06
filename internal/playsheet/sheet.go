// Package playsheet loads per-team playsheets: the dice tables that decide every play.
package playsheet

import (
	"sort"
	"strconv"
)

// TeamInfo is the team_info block of a playsheet.
type TeamInfo struct {
	Name         string `yaml:"name"`
	Abbreviation string `yaml:"abbreviation"`
	Season       int    `yaml:"season"`
	Color        string `yaml:"color"` // Hex color used by the scoreboard (e.g., "#A71930")
}

// Entry is one face of an outcome table.
type Entry struct {
	Key   string
	Yards int
}

// OutcomeTable is a weighted yardage distribution for one play. Every entry is equally
// likely, so an outcome's weight is the number of keys that map to it.
type OutcomeTable struct {
	entries []Entry
}

// NewOutcomeTable builds a table from roll keys to yards. Entries are ordered by key
// (numerically when both keys are integers) so a seeded pick is reproducible.
func NewOutcomeTable(rolls map[string]int) OutcomeTable {
	entries := make([]Entry, 0, len(rolls))
	for key, yards := range rolls {
		entries = append(entries, Entry{Key: key, Yards: yards})
	}
	sort.Slice(entries, func(i, j int) bool {
		return keyLess(entries[i].Key, entries[j].Key)
	})
	return OutcomeTable{entries: entries}
}

// Len returns the number of faces on the table.
func (t OutcomeTable) Len() int {
	return len(t.entries)
}

// Entry returns the i-th face in key order.
func (t OutcomeTable) Entry(i int) Entry {
	return t.entries[i]
}

// Entries returns a copy of all faces in key order.
func (t OutcomeTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Yards returns the yardage for a roll key.
func (t OutcomeTable) Yards(key string) (int, bool) {
	for _, e := range t.entries {
		if e.Key == key {
			return e.Yards, true
		}
	}
	return 0, false
}

// Expected returns the mean yardage of the table, rounded toward zero.
func (t OutcomeTable) Expected() int {
	if len(t.entries) == 0 {
		return 0
	}
	total := 0
	for _, e := range t.entries {
		total += e.Yards
	}
	return total / len(t.entries)
}

func keyLess(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		return ai < bi
	}
	return a < b
}

// Sheet holds one team's outcome tables. It is immutable once loaded.
type Sheet struct {
	info     TeamInfo
	sections map[Section]map[string]OutcomeTable
}

// Info returns the team_info block.
func (s *Sheet) Info() TeamInfo {
	return s.info
}

// OutcomesFor returns the table for play in section.
func (s *Sheet) OutcomesFor(section Section, play string) (OutcomeTable, error) {
	table, ok := s.sections[section][play]
	if !ok {
		return OutcomeTable{}, &UnknownPlayError{Team: s.info.Name, Section: section, Play: play}
	}
	return table, nil
}

// Plays returns the play names defined in a section, sorted.
func (s *Sheet) Plays(section Section) []string {
	plays := make([]string, 0, len(s.sections[section]))
	for name := range s.sections[section] {
		plays = append(plays, name)
	}
	sort.Strings(plays)
	return plays
}
