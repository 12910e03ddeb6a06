// Package data provides the embedded team playsheets.
package data

import (
	"embed"
	"io/fs"
)

//go:embed playsheets/*.yaml
var playsheetFS embed.FS

// Playsheets returns the embedded playsheet directory, one YAML file per team.
func Playsheets() fs.FS {
	sub, err := fs.Sub(playsheetFS, "playsheets")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
