package playsheet

import "fmt"

// DataFormatError reports a playsheet that is missing a required section or cannot be decoded.
type DataFormatError struct {
	Source  string
	Section Section
	Play    string
	Err     error
}

func (e *DataFormatError) Error() string {
	msg := "playsheet " + e.Source
	if e.Section != "" {
		msg += ": section " + string(e.Section)
	}
	if e.Play != "" {
		msg += ": play " + e.Play
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// UnknownPlayError reports a play with no outcome table. It signals a defect in the
// play catalogs or in the sheet, never a user mistake.
type UnknownPlayError struct {
	Team    string
	Section Section
	Play    string
}

func (e *UnknownPlayError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("unknown play %q: not in any play catalog", e.Play)
	}
	return fmt.Sprintf("unknown play %q in %s section of %s playsheet", e.Play, e.Section, e.Team)
}
