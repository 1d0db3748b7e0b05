// Package dock defines the dock data model: the entry list shown by a dock
// instance, its appearance settings, and the layout math that turns the
// list order into on-screen positions. The model is deliberately plain;
// all INI mapping lives in the skin package.
package dock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

var (
	// ErrEmptyName is returned when an entry name is empty or whitespace.
	ErrEmptyName = errors.New("entry name is empty")
	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("duplicate entry name")
	// ErrNameKindMismatch is returned when a name breaks the separator
	// naming convention for the entry's kind. The convention is what marks
	// a section as a separator on parse, so flag and name must agree or
	// the flag would flip on the next load.
	ErrNameKindMismatch = errors.New("name does not match entry kind")
)

const (
	// SeparatorPrefix marks separator entries by name convention.
	SeparatorPrefix = "Separator"
	// FallbackSection is the section key used when sanitization eats the
	// whole name.
	FallbackSection = "Entry"
	// placeholderName seeds generated names for freshly added entries.
	placeholderName = "New Entry"
)

// Entry is one dock item: an application shortcut or a separator.
type Entry struct {
	// Name is the display label; sanitized, it becomes the INI section key.
	// Must be unique among the entries of one instance.
	Name string
	// AppPath is the command string executed on activation, empty for
	// separators. The editor stores it in quoted form (quotes included);
	// hand-edited bare commands are carried as written.
	AppPath string
	// IconPath is a filesystem path to an image asset, or empty.
	IconPath string
	// Separator marks a visual divider. Separators never carry an
	// executable action.
	Separator bool
}

// SanitizeName converts a display name into an INI section key:
// every non-alphanumeric run becomes a single underscore, edges are
// stripped, and an empty result falls back to FallbackSection.
func SanitizeName(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range name {
		alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			pendingSep = false
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return FallbackSection
	}
	return b.String()
}

// QuoteCommand converts a launch command into its stored form: wrapped
// in double quotes unless it already starts with one. The whole value is
// taken as the program path; a caller passing arguments quotes the
// program itself. Empty input stays empty so clearing a command works.
func QuoteCommand(cmd string) string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" || strings.HasPrefix(cmd, `"`) {
		return cmd
	}
	return `"` + cmd + `"`
}

// IsSeparatorName reports whether a name follows the separator convention.
func IsSeparatorName(name string) bool {
	return strings.HasPrefix(name, SeparatorPrefix)
}

// NextSeparatorName returns the first free generated separator name
// (Separator_1, Separator_2, ...) for the given entry list.
func NextSeparatorName(entries []Entry) string {
	return nextFree(entries, func(n int) string {
		return SeparatorPrefix + "_" + strconv.Itoa(n)
	})
}

// NextPlaceholderName returns the first free placeholder name for a new
// entry ("New Entry", "New Entry 2", ...).
func NextPlaceholderName(entries []Entry) string {
	return nextFree(entries, func(n int) string {
		if n == 1 {
			return placeholderName
		}
		return placeholderName + " " + strconv.Itoa(n)
	})
}

func nextFree(entries []Entry, gen func(int) string) string {
	used := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		used[e.Name] = struct{}{}
	}
	for n := 1; ; n++ {
		name := gen(n)
		if _, taken := used[name]; !taken {
			return name
		}
	}
}

// ValidateName checks one entry name in isolation: it must be non-blank
// and must agree with the separator naming convention for the entry's kind.
func ValidateName(name string, separator bool) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if separator != IsSeparatorName(name) {
		if separator {
			return fmt.Errorf("%w: separator names must start with %q", ErrNameKindMismatch, SeparatorPrefix)
		}
		return fmt.Errorf("%w: only separators may start with %q", ErrNameKindMismatch, SeparatorPrefix)
	}
	return nil
}

// ValidateNames checks the whole entry set: every name must be non-blank
// and unique (case-sensitive). All violations are reported together so a
// hand-edited file surfaces every problem in one pass.
func ValidateNames(entries []Entry) error {
	var errs error
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: %w", i, ErrEmptyName))
			continue
		}
		if first, ok := seen[e.Name]; ok {
			errs = multierr.Append(errs, fmt.Errorf("entries %d and %d: %w: %q", first, i, ErrDuplicateName, e.Name))
			continue
		}
		seen[e.Name] = i
	}
	return errs
}

// ValidateEntries checks the full entry set the way a save does: the name
// rules of ValidateNames, the separator naming convention per entry, and
// the invariant that separators never carry a command.
func ValidateEntries(entries []Entry) error {
	errs := ValidateNames(entries)
	for i, e := range entries {
		// Blank names were already reported above.
		if err := ValidateName(e.Name, e.Separator); err != nil && !errors.Is(err, ErrEmptyName) {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: %w", i, err))
		}
		if e.Separator && e.AppPath != "" {
			errs = multierr.Append(errs, fmt.Errorf("entry %d (%s): separators cannot carry a command", i, e.Name))
		}
	}
	return errs
}
