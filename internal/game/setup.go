package game

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/samdwyer/paydirt/internal/playsheet"
	"github.com/samdwyer/paydirt/internal/team"
)

// SelectTeam asks the chooser to pick one of the playsheets in fsys and loads it.
// A non-empty preset skips the question.
func SelectTeam(ctx context.Context, chooser Chooser, fsys fs.FS, preset string, logger *slog.Logger) (*team.Team, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	name := preset
	if name == "" {
		names, err := playsheet.Names(fsys)
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return nil, errors.New("no playsheets found")
		}
		idx, err := ask(ctx, chooser, names, logger)
		if err != nil {
			return nil, err
		}
		name = names[idx]
	}

	sheet, err := playsheet.LoadFS(fsys, name)
	if err != nil {
		return nil, err
	}
	return team.New(name, sheet), nil
}
