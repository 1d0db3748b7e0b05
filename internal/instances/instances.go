// Package instances manages dock instance folders under the skins root.
// One instance is one "<Group> N" folder holding the skin file plus an
// Icons asset folder; this package discovers, resolves, creates and
// deletes those folders. It never talks to the engine: unloading a skin
// before its folder disappears is the caller's sequence.
package instances

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/7eventy7/luckydock/internal/filesys"
	"github.com/7eventy7/luckydock/internal/log"
)

var (
	// ErrInvalidSelector is returned when an instance selector is neither
	// a number nor a full instance name.
	ErrInvalidSelector = errors.New("invalid instance selector")
	// ErrNotFound is returned when a well-formed selector matches nothing.
	ErrNotFound = errors.New("instance not found")
	// ErrNoInstances is returned when the skins root holds no instances.
	ErrNoInstances = errors.New("no dock instances found")
	// ErrExists is returned when creating an instance number that is taken.
	ErrExists = errors.New("instance already exists")
)

const (
	iconsDir      = "Icons"
	skinExt       = ".ini"
	instanceToken = "@INSTANCE@"
)

//go:embed template.ini
var templateINI string

// Instance is one discovered dock instance.
type Instance struct {
	// Number is the instance's N in "<Group> N".
	Number int
	// Name is the folder name, normally "<Group> N".
	Name string
	// Dir is the instance folder path.
	Dir string
	// File is the skin file path inside Dir.
	File string
}

// Manager discovers and maintains instance folders for one skin group.
type Manager struct {
	fs    filesys.FileOps
	root  string
	group string
}

// NewManager creates a Manager over the given skins root and group name.
func NewManager(fsys filesys.FileOps, root, group string) *Manager {
	return &Manager{fs: fsys, root: root, group: group}
}

// GroupDir returns the folder that holds all instances of the group.
func (m *Manager) GroupDir() string {
	return filepath.Join(m.root, m.group)
}

// List discovers all instances, sorted by number. A missing group folder
// is an empty list, not an error: nothing has been created yet.
func (m *Manager) List() ([]Instance, error) {
	entries, err := m.fs.ReadDir(m.GroupDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning %s: %w", m.GroupDir(), err)
	}

	var out []Instance
	for _, ent := range entries {
		if !ent.IsDir() {
			continue
		}
		n, ok := m.parseNumber(ent.Name())
		if !ok {
			continue
		}
		inst := m.instance(n, ent.Name())
		if _, err := m.fs.Stat(inst.File); err != nil {
			log.Debugf("instances: %s has no skin file, skipping", inst.Dir)
			continue
		}
		out = append(out, inst)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

// Resolve maps a CLI selector to an instance: empty means the first
// discovered one, a bare number means "<Group> N", and anything else must
// be a full instance name.
func (m *Manager) Resolve(selector string) (Instance, error) {
	list, err := m.List()
	if err != nil {
		return Instance{}, err
	}

	selector = strings.TrimSpace(selector)
	if selector == "" {
		if len(list) == 0 {
			return Instance{}, ErrNoInstances
		}
		return list[0], nil
	}

	if n, err := strconv.Atoi(selector); err == nil {
		if n < 1 {
			return Instance{}, fmt.Errorf("%w: %q", ErrInvalidSelector, selector)
		}
		for _, inst := range list {
			if inst.Number == n {
				return inst, nil
			}
		}
		return Instance{}, fmt.Errorf("%w: %s %d", ErrNotFound, m.group, n)
	}

	for _, inst := range list {
		if strings.EqualFold(inst.Name, selector) {
			return inst, nil
		}
	}
	if _, ok := m.parseNumber(selector); ok {
		return Instance{}, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return Instance{}, fmt.Errorf("%w: %q (want a number or %q)", ErrInvalidSelector, selector, m.group+" N")
}

// Create makes a new instance folder with its Icons folder and a skin
// file rendered from the embedded template. number <= 0 picks the lowest
// free number; an explicit taken number is ErrExists.
func (m *Manager) Create(number int) (Instance, error) {
	list, err := m.List()
	if err != nil {
		return Instance{}, err
	}

	taken := make(map[int]bool, len(list))
	for _, inst := range list {
		taken[inst.Number] = true
	}

	if number <= 0 {
		for number = 1; taken[number]; number++ {
		}
	} else if taken[number] {
		return Instance{}, fmt.Errorf("%w: %s %d", ErrExists, m.group, number)
	}

	inst := m.instance(number, fmt.Sprintf("%s %d", m.group, number))
	if err := m.fs.MkdirAll(filepath.Join(inst.Dir, iconsDir), 0o755); err != nil {
		return Instance{}, fmt.Errorf("creating instance folder: %w", err)
	}

	data := strings.ReplaceAll(templateINI, instanceToken, strconv.Itoa(number))
	if err := m.fs.WriteFile(inst.File, []byte(data), 0o644); err != nil {
		return Instance{}, fmt.Errorf("writing skin file: %w", err)
	}

	log.Infof("instances: created %s", inst.Dir)
	return inst, nil
}

// Delete removes the instance folder and everything in it. The engine
// should have unloaded the skin first, or the rendering process may still
// hold the file open.
func (m *Manager) Delete(inst Instance) error {
	if err := m.fs.RemoveAll(inst.Dir); err != nil {
		return fmt.Errorf("removing %s: %w", inst.Dir, err)
	}
	log.Infof("instances: removed %s", inst.Dir)
	return nil
}

func (m *Manager) instance(n int, folder string) Instance {
	dir := filepath.Join(m.GroupDir(), folder)
	return Instance{
		Number: n,
		Name:   folder,
		Dir:    dir,
		File:   filepath.Join(dir, m.group+skinExt),
	}
}

// parseNumber extracts N from a "<Group> N" folder name.
func (m *Manager) parseNumber(folder string) (int, bool) {
	rest, ok := strings.CutPrefix(folder, m.group+" ")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
