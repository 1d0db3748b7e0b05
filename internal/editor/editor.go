// Package editor implements the entry-list editing operations behind the
// CLI: load one dock instance, mutate its entry list or appearance, save
// through the skin store and ask the engine to pick the change up. Every
// mutating operation persists immediately; a reload failure after a
// successful save is carried in the Result rather than failing the
// operation, because the file on disk is already correct and the user can
// simply refresh again.
package editor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/7eventy7/luckydock/internal/dock"
	"github.com/7eventy7/luckydock/internal/instances"
	"github.com/7eventy7/luckydock/internal/skin"
)

// ErrEntryNotFound is returned when an entry reference (position or name)
// matches nothing in the loaded instance.
var ErrEntryNotFound = errors.New("entry not found")

// Reloader is the slice of the engine client the editor needs.
type Reloader interface {
	Reload(ctx context.Context, instance, file string) error
}

// Direction selects which neighbor an entry swaps with.
type Direction int

const (
	Up Direction = iota
	Down
)

// ParseDirection reads "up" or "down", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return Up, fmt.Errorf("invalid direction %q (want up or down)", s)
	}
}

// Result reports what a mutating operation did. ReloadErr is non-nil when
// the save succeeded but the engine did not pick it up; the edit itself
// still stands.
type Result struct {
	// Entry is the affected entry: the new state for add/update/move, the
	// removed entry for remove.
	Entry dock.Entry
	// Index is the entry's position after the operation (zero-based), or
	// the removed entry's former position.
	Index int
	// Moved reports whether a move changed anything; a move clamped at
	// the list edge leaves everything in place and skips the save.
	Moved bool
	// ReloadErr is the engine reload failure, if any.
	ReloadErr error
}

// Update carries optional field changes for one entry; nil fields keep
// the current value.
type Update struct {
	Name     *string
	AppPath  *string
	IconPath *string
}

// Editor edits one loaded dock instance.
type Editor struct {
	store skin.Store
	eng   Reloader
	inst  instances.Instance
	doc   *skin.Document
}

// New loads the instance's skin file and returns an editor over it.
func New(store skin.Store, eng Reloader, inst instances.Instance) (*Editor, error) {
	doc, err := store.Load(inst.File)
	if err != nil {
		return nil, err
	}
	return &Editor{store: store, eng: eng, inst: inst, doc: doc}, nil
}

// Instance returns the instance being edited.
func (ed *Editor) Instance() instances.Instance {
	return ed.inst
}

// Entries returns the current entry list in display order.
func (ed *Editor) Entries() []dock.Entry {
	return slices.Clone(ed.doc.Entries)
}

// Settings returns the current appearance settings.
func (ed *Editor) Settings() dock.Settings {
	return ed.doc.Settings
}

// Find resolves an entry reference: a 1-based list position or an entry
// name (exact match first, then case-insensitive).
func (ed *Editor) Find(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(ed.doc.Entries) {
			return 0, fmt.Errorf("%w: position %d of %d", ErrEntryNotFound, n, len(ed.doc.Entries))
		}
		return n - 1, nil
	}
	for i, e := range ed.doc.Entries {
		if e.Name == ref {
			return i, nil
		}
	}
	for i, e := range ed.doc.Entries {
		if strings.EqualFold(e.Name, ref) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrEntryNotFound, ref)
}

// Add appends an application entry. An empty name gets the next free
// placeholder name; a bare launch command is stored in its quoted form.
func (ed *Editor) Add(ctx context.Context, name, appPath, iconPath string) (Result, error) {
	if strings.TrimSpace(name) == "" {
		name = dock.NextPlaceholderName(ed.doc.Entries)
	}
	e := dock.Entry{Name: name, AppPath: dock.QuoteCommand(appPath), IconPath: iconPath}
	next := append(ed.Entries(), e)
	return ed.commit(ctx, next, len(next)-1)
}

// AddSeparator appends a separator under the next free generated name.
func (ed *Editor) AddSeparator(ctx context.Context) (Result, error) {
	e := dock.Entry{Name: dock.NextSeparatorName(ed.doc.Entries), Separator: true}
	next := append(ed.Entries(), e)
	return ed.commit(ctx, next, len(next)-1)
}

// UpdateEntry changes fields of the referenced entry. The updated set is
// validated before anything is written: renames must keep the name unique
// and consistent with the entry's kind. A new launch command is quoted
// the way Add quotes it.
func (ed *Editor) UpdateEntry(ctx context.Context, ref string, upd Update) (Result, error) {
	idx, err := ed.Find(ref)
	if err != nil {
		return Result{}, err
	}

	next := ed.Entries()
	e := next[idx]
	if upd.Name != nil {
		e.Name = *upd.Name
	}
	if upd.AppPath != nil {
		e.AppPath = dock.QuoteCommand(*upd.AppPath)
	}
	if upd.IconPath != nil {
		e.IconPath = *upd.IconPath
	}
	next[idx] = e
	return ed.commit(ctx, next, idx)
}

// Remove deletes the referenced entry. Confirmation is the caller's job.
// Removing the last entry leaves a valid empty dock.
func (ed *Editor) Remove(ctx context.Context, ref string) (Result, error) {
	idx, err := ed.Find(ref)
	if err != nil {
		return Result{}, err
	}

	removed := ed.doc.Entries[idx]
	next := slices.Delete(ed.Entries(), idx, idx+1)
	res, err := ed.commit(ctx, next, -1)
	if err != nil {
		return res, err
	}
	res.Entry = removed
	res.Index = idx
	return res, nil
}

// Move swaps the referenced entry with its neighbor. At the list edge
// nothing moves, nothing is saved, and Result.Moved is false.
func (ed *Editor) Move(ctx context.Context, ref string, dir Direction) (Result, error) {
	idx, err := ed.Find(ref)
	if err != nil {
		return Result{}, err
	}

	other := idx - 1
	if dir == Down {
		other = idx + 1
	}
	if other < 0 || other >= len(ed.doc.Entries) {
		return Result{Entry: ed.doc.Entries[idx], Index: idx}, nil
	}

	next := ed.Entries()
	next[idx], next[other] = next[other], next[idx]
	res, err := ed.commit(ctx, next, other)
	if err != nil {
		return res, err
	}
	res.Moved = true
	return res, nil
}

// UpdateSettings replaces the appearance settings (clamped) and persists.
func (ed *Editor) UpdateSettings(ctx context.Context, s dock.Settings) (Result, error) {
	ed.doc.Settings = s.Clamp()
	return ed.save(ctx, -1)
}

// commit validates the candidate entry list, adopts it and saves. The
// in-memory list is only replaced once validation passes, so a rejected
// edit leaves the editor unchanged.
func (ed *Editor) commit(ctx context.Context, next []dock.Entry, idx int) (Result, error) {
	if err := dock.ValidateEntries(next); err != nil {
		return Result{}, err
	}
	ed.doc.Entries = next
	return ed.save(ctx, idx)
}

// save persists the document and requests an engine reload. A reload
// failure never rolls back the save; it travels in Result.ReloadErr.
func (ed *Editor) save(ctx context.Context, idx int) (Result, error) {
	if err := ed.store.Save(ed.inst.File, ed.doc); err != nil {
		return Result{}, fmt.Errorf("saving %s: %w", ed.inst.Name, err)
	}

	res := Result{Index: idx}
	if idx >= 0 && idx < len(ed.doc.Entries) {
		res.Entry = ed.doc.Entries[idx]
	}
	res.ReloadErr = ed.eng.Reload(ctx, ed.inst.Name, filepath.Base(ed.inst.File))
	return res, nil
}
