package playsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const fileExt = ".yaml"

// rawSheet mirrors the YAML layout. Sections are pointers/maps so absence is detectable.
type rawSheet struct {
	TeamInfo     *TeamInfo                 `yaml:"team_info"`
	Offense      map[string]map[string]int `yaml:"offense"`
	Defense      map[string]map[string]int `yaml:"defense"`
	SpecialTeams map[string]map[string]int `yaml:"special_teams"`
}

// Load decodes a playsheet from r. source names the input in errors.
func Load(r io.Reader, source string) (*Sheet, error) {
	var raw rawSheet
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, &DataFormatError{Source: source, Err: err}
	}

	if raw.TeamInfo == nil {
		return nil, &DataFormatError{Source: source, Section: SectionTeamInfo, Err: errors.New("missing section")}
	}
	if strings.TrimSpace(raw.TeamInfo.Name) == "" {
		return nil, &DataFormatError{Source: source, Section: SectionTeamInfo, Err: errors.New("missing team name")}
	}

	sheet := &Sheet{
		info:     *raw.TeamInfo,
		sections: make(map[Section]map[string]OutcomeTable, 3),
	}

	for _, sec := range []struct {
		name  Section
		plays map[string]map[string]int
	}{
		{SectionOffense, raw.Offense},
		{SectionDefense, raw.Defense},
		{SectionSpecialTeams, raw.SpecialTeams},
	} {
		if len(sec.plays) == 0 {
			return nil, &DataFormatError{Source: source, Section: sec.name, Err: errors.New("missing section")}
		}
		tables := make(map[string]OutcomeTable, len(sec.plays))
		for play, rolls := range sec.plays {
			if len(rolls) == 0 {
				return nil, &DataFormatError{Source: source, Section: sec.name, Play: play, Err: errors.New("empty outcome table")}
			}
			tables[play] = NewOutcomeTable(rolls)
		}
		sheet.sections[sec.name] = tables
	}

	return sheet, nil
}

// LoadFS reads the playsheet for team (file stem, e.g. "atlanta_falcons") from fsys.
func LoadFS(fsys fs.FS, team string) (*Sheet, error) {
	filename := team + fileExt
	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read playsheet %s: %w", filename, err)
	}
	return Load(bytes.NewReader(content), filename)
}

// MustLoadFS reads a playsheet, panicking on error.
func MustLoadFS(fsys fs.FS, team string) *Sheet {
	sheet, err := LoadFS(fsys, team)
	if err != nil {
		panic(err)
	}
	return sheet
}

// Names lists the teams with a playsheet in fsys, sorted.
func Names(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, "*"+fileExt)
	if err != nil {
		return nil, fmt.Errorf("failed to list playsheets: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), fileExt))
	}
	sort.Strings(names)
	return names, nil
}
