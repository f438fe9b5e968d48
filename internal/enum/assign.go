package enum

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"bsfield-generator/internal/diagnostic"
)

// Entry is one member of the generated enumeration.
type Entry struct {
	// Name is the identifier derived from Path.
	Name string
	// ID is the value assigned by the registry.
	ID int64
	// Path is the canonical path the entry was derived from.
	Path string
}

// Registry resolves canonical paths to ids.
type Registry interface {
	Lookup(path string) (int64, bool)
}

// Assignment is the result of assigning ids to canonical paths.
type Assignment struct {
	// Entries sorted by id; identifiers are unique.
	Entries []Entry
	// Missing lists paths without a registry id, in input order.
	Missing []string
	// Collisions lists entries dropped because an earlier entry already
	// used their identifier.
	Collisions []Entry
	Diagnostics diagnostic.Diagnostics
}

var identifierReplacer = strings.NewReplacer(".", "_", ":", "_")

// Identifier derives the enum member name of a canonical path.
func Identifier(path string) string {
	return identifierReplacer.Replace(path)
}

// Assign looks up every path in reg, in order, and returns the entries
// sorted by id. Ties keep the order of paths.
//
// Paths missing from the registry are skipped and reported as warnings.
// When two paths derive the same identifier, only the first one in sorted
// order is kept and the collision is reported as an error.
func Assign(logger *slog.Logger, paths []string, reg Registry) Assignment {
	var a Assignment

	entries := make([]Entry, 0, len(paths))

	for _, path := range paths {
		id, ok := reg.Lookup(path)
		if !ok {
			logger.Info("cannot find id for canonical path", "path", path)
			a.Missing = append(a.Missing, path)
			a.Diagnostics.AddWarning(diagnostic.CodeMissingID, "no id in registry", "", path)

			continue
		}

		entries = append(entries, Entry{Name: Identifier(path), ID: id, Path: path})
	}

	slices.SortStableFunc(entries, func(x, y Entry) int {
		return cmp.Compare(x.ID, y.ID)
	})

	owners := make(map[string]Entry, len(entries))
	a.Entries = make([]Entry, 0, len(entries))

	for _, e := range entries {
		if prev, dup := owners[e.Name]; dup {
			msg := fmt.Sprintf("identifier %s already used by %s (id %d); %s (id %d) not emitted",
				e.Name, prev.Path, prev.ID, e.Path, e.ID)
			logger.Error("enum identifier collision",
				"identifier", e.Name,
				"kept", prev.Path,
				"dropped", e.Path)
			a.Collisions = append(a.Collisions, e)
			a.Diagnostics.AddError(diagnostic.CodeIdentifierCollision, msg, "", e.Path)

			continue
		}

		owners[e.Name] = e
		a.Entries = append(a.Entries, e)
	}

	logger.Info("enum ids assigned",
		"paths", len(paths),
		"entries", len(a.Entries),
		"missing", len(a.Missing),
		"collisions", len(a.Collisions))

	return a
}
