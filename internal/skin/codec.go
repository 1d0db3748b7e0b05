// Package skin maps dock instance files between their on-disk INI form
// and the in-memory Document model. Entry sections are regenerated from
// scratch on every rewrite (layout offsets and action strings are derived
// state); reserved sections owned by the engine template are carried
// through untouched except for the variables and background shape the
// editor controls.
package skin

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/7eventy7/luckydock/internal/dock"
	"github.com/7eventy7/luckydock/pkg/bang"
)

// Reserved section names owned by the engine/template.
const (
	sectionRainmeter    = "Rainmeter"
	sectionMetadata     = "Metadata"
	sectionVariables    = "Variables"
	sectionBackground   = "Background"
	sectionEntryStyle   = "EntryStyle"
	sectionToolTipStyle = "ToolTipStyle"
)

// Variables keys the editor owns.
const (
	keyEntryCount      = "EntryCount"
	keyIconSize        = "IconSize"
	keyCornerRadius    = "CornerRadius"
	keyBgColor         = "BgColor"
	keyBgAlpha         = "BgAlpha"
	keyOrientation     = "Orientation"
	keyDoubleClick     = "DoubleClick"
	keyToolTipOn       = "ToolTipOn"
	keyToolTipFont     = "ToolTipFont"
	keyToolTipFontSize = "ToolTipFontSize"
	keyToolTipDelay    = "ToolTipDelay"
)

// Entry section keys.
const (
	keyMeter           = "Meter"
	keyMeterStyle      = "MeterStyle"
	keyDisplayName     = "DisplayName"
	keyImageName       = "ImageName"
	keyW               = "W"
	keyH               = "H"
	keyX               = "X"
	keyY               = "Y"
	keyShape           = "Shape"
	keyLeftMouseUp     = "LeftMouseUpAction"
	keyLeftMouseDouble = "LeftMouseDoubleClickAction"
	keyMouseOver       = "MouseOverAction"
	keyMouseLeave      = "MouseLeaveAction"
	keyToolTipText     = "ToolTipText"
)

const separatorThickness = 2

// reservedSections are never parsed as entries and survive every rewrite.
// Lookups are lower-cased: the engine treats section names
// case-insensitively.
var reservedSections = map[string]struct{}{
	"rainmeter":    {},
	"metadata":     {},
	"variables":    {},
	"background":   {},
	"entrystyle":   {},
	"tooltipstyle": {},
}

// loadOpts keeps the parser from mangling engine syntax: action strings
// legitimately contain '#' (#CURRENTSECTION#) and ';', and values such
// as "C:\..." contain ':', so inline comments and the ':' key delimiter
// are both disabled.
var loadOpts = ini.LoadOptions{
	IgnoreInlineComment: true,
	KeyValueDelimiters:  "=",
}

func init() {
	// The engine reads plain key=value lines; aligned output churns
	// diffs for no benefit.
	ini.PrettyFormat = false
}

// Document is the in-memory form of one instance file: the ordered entry
// list plus the appearance settings from the Variables section.
type Document struct {
	Entries  []dock.Entry
	Settings dock.Settings
}

// Parse reads an instance file into a Document. Every section outside the
// reserved set (and not matching the tooltip-helper naming pattern)
// becomes one entry, in file order. Malformed numeric settings fall back
// to their documented defaults; Parse never fails on value content, only
// on INI syntax.
func Parse(data []byte) (*Document, error) {
	f, err := ini.LoadSources(loadOpts, data)
	if err != nil {
		return nil, fmt.Errorf("parsing skin file: %w", err)
	}

	doc := &Document{Settings: parseSettings(f)}
	for _, sec := range f.Sections() {
		if !isEntrySection(sec.Name()) {
			continue
		}
		doc.Entries = append(doc.Entries, parseEntry(sec))
	}
	return doc, nil
}

// Compose renders a Document back to INI, layering it over the previous
// file content so reserved sections survive. prev may be nil for a file
// composed from nothing. The entry set is validated first; an invalid
// document is never written.
func Compose(prev []byte, doc *Document) ([]byte, error) {
	if err := dock.ValidateEntries(doc.Entries); err != nil {
		return nil, err
	}

	if prev == nil {
		prev = []byte{}
	}
	f, err := ini.LoadSources(loadOpts, prev)
	if err != nil {
		return nil, fmt.Errorf("parsing previous skin file: %w", err)
	}

	// Entry sections are derived state: drop them all and re-emit below.
	for _, name := range f.SectionStrings() {
		if isEntrySection(name) {
			f.DeleteSection(name)
		}
	}

	s := doc.Settings.Clamp()
	writeVariables(sectionFor(f, sectionVariables), s, len(doc.Entries))
	writeBackground(sectionFor(f, sectionBackground), s, len(doc.Entries))

	taken := make(map[string]bool, len(doc.Entries))
	for i, e := range doc.Entries {
		writeEntry(f.Section(sectionKeyFor(e.Name, taken)), e, s, i)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("rendering skin file: %w", err)
	}
	return buf.Bytes(), nil
}

// sectionFor finds a section by name the way the engine reads sections:
// case-insensitively. A hand-edited [variables] keeps serving as the
// Variables section instead of gaining a duplicate with canonical casing.
// Only when no casing of the name exists is the canonical one created.
func sectionFor(f *ini.File, name string) *ini.Section {
	for _, existing := range f.SectionStrings() {
		if strings.EqualFold(existing, name) {
			return f.Section(existing)
		}
	}
	return f.Section(name)
}

// isEntrySection reports whether an INI section holds a user entry.
func isEntrySection(name string) bool {
	if name == ini.DefaultSection {
		return false
	}
	low := strings.ToLower(name)
	if _, ok := reservedSections[low]; ok {
		return false
	}
	// Tooltip helpers follow a naming pattern rather than a fixed list;
	// some themes generate one per entry.
	if strings.HasPrefix(low, "tooltip") || strings.HasSuffix(low, "tooltip") {
		return false
	}
	return true
}

func parseSettings(f *ini.File) dock.Settings {
	def := dock.DefaultSettings()
	vars := sectionFor(f, sectionVariables)

	s := dock.Settings{
		IconSize:     vars.Key(keyIconSize).MustInt(def.IconSize),
		CornerRadius: vars.Key(keyCornerRadius).MustInt(def.CornerRadius),
		BgColor:      dock.ParseRGB(vars.Key(keyBgColor).String(), def.BgColor),
		BgAlpha:      vars.Key(keyBgAlpha).MustInt(def.BgAlpha),
		Orientation:  dock.ParseOrientation(vars.Key(keyOrientation).String()),
		DoubleClick:  vars.Key(keyDoubleClick).MustInt(0) == 1,
		ToolTipOn:    vars.Key(keyToolTipOn).MustInt(boolInt(def.ToolTipOn)) == 1,
		ToolTipFont:  vars.Key(keyToolTipFont).MustString(def.ToolTipFont),
		ToolTipSize:  vars.Key(keyToolTipFontSize).MustInt(def.ToolTipSize),
		ToolTipDelay: vars.Key(keyToolTipDelay).MustInt(def.ToolTipDelay),
	}
	return s.Clamp()
}

func parseEntry(sec *ini.Section) dock.Entry {
	e := dock.Entry{
		Name:      sec.Key(keyDisplayName).MustString(sec.Name()),
		IconPath:  sec.Key(keyImageName).String(),
		Separator: dock.IsSeparatorName(sec.Name()),
	}
	if e.Separator {
		return e
	}

	action := sec.Key(keyLeftMouseUp).String()
	if action == "" {
		action = sec.Key(keyLeftMouseDouble).String()
	}
	if app, ok := bang.AppFromAction(action); ok {
		e.AppPath = app
	}
	return e
}

// sectionKeyFor derives an INI section key from an entry name. Sanitized
// names that land on a reserved or helper-patterned key are prefixed, and
// collisions between entries (distinct display names can sanitize to the
// same key) get a numeric suffix. The display name itself is stored in
// the section, so mangling here never leaks into the model.
func sectionKeyFor(name string, taken map[string]bool) string {
	key := dock.SanitizeName(name)
	if !isEntrySection(key) {
		key = dock.FallbackSection + "_" + key
	}
	base := key
	for n := 2; !isEntrySection(key) || taken[strings.ToLower(key)]; n++ {
		key = base + "_" + strconv.Itoa(n)
	}
	taken[strings.ToLower(key)] = true
	return key
}

func writeVariables(vars *ini.Section, s dock.Settings, count int) {
	vars.Key(keyEntryCount).SetValue(strconv.Itoa(count))
	vars.Key(keyIconSize).SetValue(strconv.Itoa(s.IconSize))
	vars.Key(keyCornerRadius).SetValue(strconv.Itoa(s.CornerRadius))
	vars.Key(keyBgColor).SetValue(s.BgColor.String())
	vars.Key(keyBgAlpha).SetValue(strconv.Itoa(s.BgAlpha))
	vars.Key(keyOrientation).SetValue(string(s.Orientation))
	vars.Key(keyDoubleClick).SetValue(strconv.Itoa(boolInt(s.DoubleClick)))
	vars.Key(keyToolTipOn).SetValue(strconv.Itoa(boolInt(s.ToolTipOn)))
	vars.Key(keyToolTipFont).SetValue(s.ToolTipFont)
	vars.Key(keyToolTipFontSize).SetValue(strconv.Itoa(s.ToolTipSize))
	vars.Key(keyToolTipDelay).SetValue(strconv.Itoa(s.ToolTipDelay))
}

func writeBackground(bg *ini.Section, s dock.Settings, count int) {
	w, h := dock.BackgroundSize(s, count)
	bg.Key(keyMeter).SetValue("Shape")
	bg.Key(keyShape).SetValue(fmt.Sprintf(
		"Rectangle 0,0,%d,%d,%d | Fill Color %s,%d | StrokeWidth 0",
		w, h, s.CornerRadius, s.BgColor, s.BgAlpha))
}

func writeEntry(sec *ini.Section, e dock.Entry, s dock.Settings, idx int) {
	x, y := dock.Offset(s, idx)

	if e.Separator && e.IconPath == "" {
		sec.Key(keyMeter).SetValue("Shape")
		sec.Key(keyShape).SetValue(separatorShape(s))
	} else {
		sec.Key(keyMeter).SetValue("Image")
		if e.IconPath != "" {
			sec.Key(keyImageName).SetValue(e.IconPath)
		}
		sec.Key(keyW).SetValue(strconv.Itoa(s.IconSize))
		sec.Key(keyH).SetValue(strconv.Itoa(s.IconSize))
	}
	sec.Key(keyMeterStyle).SetValue(sectionEntryStyle)
	sec.Key(keyDisplayName).SetValue(e.Name)
	sec.Key(keyX).SetValue(strconv.Itoa(x))
	sec.Key(keyY).SetValue(strconv.Itoa(y))

	if e.Separator {
		return
	}

	if e.AppPath != "" {
		action := bang.ExecuteAction(e.AppPath)
		if s.DoubleClick {
			sec.Key(keyLeftMouseDouble).SetValue(action)
		} else {
			sec.Key(keyLeftMouseUp).SetValue(action)
		}
	}
	sec.Key(keyMouseOver).SetValue(bang.HoverInAction())
	sec.Key(keyMouseLeave).SetValue(bang.HoverOutAction())
	if s.ToolTipOn {
		sec.Key(keyToolTipText).SetValue(e.Name)
	}
}

// separatorShape draws a thin divider across the dock's cross axis.
func separatorShape(s dock.Settings) string {
	w, h := s.IconSize, separatorThickness
	if s.Orientation == dock.Horizontal {
		w, h = separatorThickness, s.IconSize
	}
	return fmt.Sprintf("Rectangle 0,0,%d,%d | Fill Color 150,150,150,200 | StrokeWidth 0", w, h)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
