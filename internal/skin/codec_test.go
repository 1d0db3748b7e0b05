package skin

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/ini.v1"

	"github.com/7eventy7/luckydock/internal/dock"
)

type CodecTestSuite struct {
	suite.Suite
}

func TestCodecTestSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

// loadOut re-reads composed output for structural assertions.
func (s *CodecTestSuite) loadOut(out []byte) *ini.File {
	f, err := ini.LoadSources(loadOpts, out)
	s.Require().NoError(err)
	return f
}

func (s *CodecTestSuite) hasSection(f *ini.File, name string) bool {
	_, err := f.GetSection(name)
	return err == nil
}

func (s *CodecTestSuite) TestParseScenario() {
	in := `[Variables]
EntryCount=2
IconSize=48
BgColor=32,32,32
BgAlpha=180
Orientation=Vertical

[Notepad]
Meter=Image
MeterStyle=EntryStyle
ImageName=Icons\notepad.png
X=12
Y=12
LeftMouseUpAction=["C:\Windows\notepad.exe"]

[Separator_1]
Meter=Image
MeterStyle=EntryStyle
ImageName=Icons\separator.png
X=12
Y=68
`

	doc, err := Parse([]byte(in))
	s.Require().NoError(err)
	s.Equal([]dock.Entry{
		{Name: "Notepad", AppPath: `"C:\Windows\notepad.exe"`, IconPath: `Icons\notepad.png`},
		{Name: "Separator_1", IconPath: `Icons\separator.png`, Separator: true},
	}, doc.Entries)
	s.Equal(48, doc.Settings.IconSize)
	s.Equal(dock.Vertical, doc.Settings.Orientation)
}

func (s *CodecTestSuite) TestRoundTrip() {
	horizontal := dock.DefaultSettings()
	horizontal.Orientation = dock.Horizontal
	horizontal.DoubleClick = true
	horizontal.ToolTipOn = false

	tests := []struct {
		name string
		doc  Document
	}{
		{
			name: "vertical dock with separator",
			doc: Document{
				Entries: []dock.Entry{
					{Name: "Notepad", AppPath: `"C:\Windows\notepad.exe"`, IconPath: `Icons\notepad.png`},
					{Name: "Separator_1", Separator: true},
					{Name: "Visual Studio Code", AppPath: `"C:\Program Files\VS Code\Code.exe" --new-window`, IconPath: `Icons\code.png`},
				},
				Settings: dock.DefaultSettings(),
			},
		},
		{
			name: "horizontal double-click dock",
			doc: Document{
				Entries: []dock.Entry{
					{Name: "Terminal", AppPath: `"C:\Windows\System32\wt.exe"`},
					{Name: "Separator_1", IconPath: `Icons\line.png`, Separator: true},
				},
				Settings: horizontal,
			},
		},
		{
			name: "names that sanitize to the same key",
			doc: Document{
				Entries: []dock.Entry{
					{Name: "My App", AppPath: `"C:\a.exe"`},
					{Name: "My_App", AppPath: `"C:\b.exe"`},
					{Name: "Variables", AppPath: `"C:\v.exe"`},
				},
				Settings: dock.DefaultSettings(),
			},
		},
		{
			name: "empty dock",
			doc: Document{
				Settings: dock.DefaultSettings(),
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			out, err := Compose(nil, &tc.doc)
			s.Require().NoError(err)

			got, err := Parse(out)
			s.Require().NoError(err)
			s.Equal(tc.doc.Entries, got.Entries)
			s.Equal(tc.doc.Settings.Clamp(), got.Settings)
		})
	}
}

func (s *CodecTestSuite) TestRoundTripKeepsBareCommands() {
	// A hand-edited action without quotes must survive load and re-save
	// byte for byte; dropping the key would silently break the entry.
	prev := `[Variables]
EntryCount=1

[Notepad]
Meter=Image
DisplayName=Notepad
LeftMouseUpAction=[C:\Windows\notepad.exe]
`

	doc, err := Parse([]byte(prev))
	s.Require().NoError(err)
	s.Require().Len(doc.Entries, 1)
	s.Equal(`C:\Windows\notepad.exe`, doc.Entries[0].AppPath)

	out, err := Compose([]byte(prev), doc)
	s.Require().NoError(err)
	f := s.loadOut(out)
	s.Equal(`[C:\Windows\notepad.exe]`, f.Section("Notepad").Key("LeftMouseUpAction").String())

	// The next load/save cycle keeps it too.
	again, err := Parse(out)
	s.Require().NoError(err)
	s.Equal(doc.Entries, again.Entries)
}

func (s *CodecTestSuite) TestParseMalformedSettings() {
	in := `[Variables]
IconSize=huge
CornerRadius=-5
BgColor=stone
BgAlpha=opaque
Orientation=diagonal
DoubleClick=yes
ToolTipDelay=9999999
`

	doc, err := Parse([]byte(in))
	s.Require().NoError(err)

	s.Equal(dock.DefaultIconSize, doc.Settings.IconSize)
	s.Equal(dock.MinCornerRadius, doc.Settings.CornerRadius)
	s.Equal(dock.DefaultBgColor, doc.Settings.BgColor)
	s.Equal(dock.DefaultBgAlpha, doc.Settings.BgAlpha)
	s.Equal(dock.Vertical, doc.Settings.Orientation)
	s.False(doc.Settings.DoubleClick)
	s.Equal(dock.MaxToolTipDelay, doc.Settings.ToolTipDelay)
}

func (s *CodecTestSuite) TestParseSkipsHelperSections() {
	in := `[Variables]
EntryCount=1

[ToolTipStyle]
FontFace=Segoe UI

[NotepadToolTip]
Meter=String

[Notepad]
Meter=Image
DisplayName=Notepad
`

	doc, err := Parse([]byte(in))
	s.Require().NoError(err)
	s.Len(doc.Entries, 1)
	s.Equal("Notepad", doc.Entries[0].Name)
}

func (s *CodecTestSuite) TestComposeValidation() {
	tests := []struct {
		name    string
		entries []dock.Entry
		wantErr error
	}{
		{
			name: "duplicate names",
			entries: []dock.Entry{
				{Name: "App", AppPath: `"C:\a.exe"`},
				{Name: "App", AppPath: `"C:\b.exe"`},
			},
			wantErr: dock.ErrDuplicateName,
		},
		{
			name: "blank name",
			entries: []dock.Entry{
				{Name: "   ", AppPath: `"C:\a.exe"`},
			},
			wantErr: dock.ErrEmptyName,
		},
		{
			name: "separator without the name prefix",
			entries: []dock.Entry{
				{Name: "Break", Separator: true},
			},
			wantErr: dock.ErrNameKindMismatch,
		},
		{
			name: "app entry with the separator prefix",
			entries: []dock.Entry{
				{Name: "Separator_9", AppPath: `"C:\a.exe"`},
			},
			wantErr: dock.ErrNameKindMismatch,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := Compose(nil, &Document{Entries: tc.entries, Settings: dock.DefaultSettings()})
			s.Require().Error(err)
			s.ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *CodecTestSuite) TestComposeRejectsSeparatorWithCommand() {
	doc := &Document{
		Entries: []dock.Entry{
			{Name: "Separator_1", AppPath: `"C:\a.exe"`, Separator: true},
		},
		Settings: dock.DefaultSettings(),
	}

	_, err := Compose(nil, doc)
	s.Require().Error(err)
	s.ErrorContains(err, "separators cannot carry a command")
}

func (s *CodecTestSuite) TestComposePreservesReserved() {
	prev := `[Rainmeter]
Update=1000

[Metadata]
Name=LuckyDock
Author=7eventy7

[Variables]
EntryCount=1
IconSize=64
CustomNote=keep me

[Background]
Meter=Shape
Shape=Rectangle 0,0,88,88,8 | Fill Color 32,32,32,180 | StrokeWidth 0

[EntryStyle]
AntiAlias=1

[NotepadToolTip]
Meter=String

[OldEntry]
Meter=Image
DisplayName=Old Entry
`

	settings := dock.DefaultSettings()
	settings.IconSize = 32
	doc := &Document{
		Entries:  []dock.Entry{{Name: "Fresh", AppPath: `"C:\fresh.exe"`}},
		Settings: settings,
	}

	out, err := Compose([]byte(prev), doc)
	s.Require().NoError(err)
	f := s.loadOut(out)

	s.Equal("1000", f.Section("Rainmeter").Key("Update").String())
	s.Equal("7eventy7", f.Section("Metadata").Key("Author").String())
	s.Equal("keep me", f.Section("Variables").Key("CustomNote").String())
	s.Equal("1", f.Section("EntryStyle").Key("AntiAlias").String())

	// Prior entry sections are derived state and get dropped; tooltip
	// helper sections are not entries and stay.
	s.False(s.hasSection(f, "OldEntry"))
	s.True(s.hasSection(f, "NotepadToolTip"))
	s.True(s.hasSection(f, "Fresh"))

	s.Equal("1", f.Section("Variables").Key("EntryCount").String())
	s.Equal("32", f.Section("Variables").Key("IconSize").String())
	s.Equal(
		"Rectangle 0,0,56,56,8 | Fill Color 32,32,32,180 | StrokeWidth 0",
		f.Section("Background").Key("Shape").String(),
	)
}

func (s *CodecTestSuite) TestReservedSectionCasingPreserved() {
	// The engine treats section names case-insensitively, so a
	// hand-edited [variables] is the Variables section. Both sides must
	// honor that: parse reads its values, compose writes into it instead
	// of appending a canonically cased duplicate.
	prev := `[variables]
IconSize=64
CustomNote=keep me

[background]
Meter=Shape

[Notepad]
Meter=Image
DisplayName=Notepad
LeftMouseUpAction=["C:\Windows\notepad.exe"]
`

	doc, err := Parse([]byte(prev))
	s.Require().NoError(err)
	s.Equal(64, doc.Settings.IconSize)
	s.Require().Len(doc.Entries, 1)

	out, err := Compose([]byte(prev), doc)
	s.Require().NoError(err)
	f := s.loadOut(out)

	s.True(s.hasSection(f, "variables"))
	s.False(s.hasSection(f, "Variables"))
	s.True(s.hasSection(f, "background"))
	s.False(s.hasSection(f, "Background"))

	s.Equal("64", f.Section("variables").Key("IconSize").String())
	s.Equal("keep me", f.Section("variables").Key("CustomNote").String())
	s.Equal("1", f.Section("variables").Key("EntryCount").String())
	s.Contains(f.Section("background").Key("Shape").String(), "Rectangle")
}

func (s *CodecTestSuite) TestComposeWritesOffsets() {
	doc := &Document{
		Entries: []dock.Entry{
			{Name: "One", AppPath: `"C:\1.exe"`},
			{Name: "Two", AppPath: `"C:\2.exe"`},
			{Name: "Three", AppPath: `"C:\3.exe"`},
		},
		Settings: dock.DefaultSettings(),
	}

	out, err := Compose(nil, doc)
	s.Require().NoError(err)
	f := s.loadOut(out)

	s.Equal("12", f.Section("Three").Key("X").String())
	s.Equal("124", f.Section("Three").Key("Y").String())
	s.Equal("3", f.Section("Variables").Key("EntryCount").String())
}

func (s *CodecTestSuite) TestComposeManglesCollidingKeys() {
	doc := &Document{
		Entries: []dock.Entry{
			{Name: "My App", AppPath: `"C:\a.exe"`},
			{Name: "My_App", AppPath: `"C:\b.exe"`},
			{Name: "Variables", AppPath: `"C:\v.exe"`},
		},
		Settings: dock.DefaultSettings(),
	}

	out, err := Compose(nil, doc)
	s.Require().NoError(err)
	f := s.loadOut(out)

	s.True(s.hasSection(f, "My_App"))
	s.True(s.hasSection(f, "My_App_2"))
	s.True(s.hasSection(f, "Entry_Variables"))
	s.Equal("Variables", f.Section("Entry_Variables").Key("DisplayName").String())
	s.Equal("3", f.Section("Variables").Key("EntryCount").String())
}

func (s *CodecTestSuite) TestComposeActionKeyFollowsClickMode() {
	doc := &Document{
		Entries:  []dock.Entry{{Name: "App", AppPath: `"C:\a.exe"`}},
		Settings: dock.DefaultSettings(),
	}

	out, err := Compose(nil, doc)
	s.Require().NoError(err)
	f := s.loadOut(out)
	s.Equal(`["C:\a.exe"]`, f.Section("App").Key("LeftMouseUpAction").String())
	s.Empty(f.Section("App").Key("LeftMouseDoubleClickAction").String())

	doc.Settings.DoubleClick = true
	out, err = Compose(nil, doc)
	s.Require().NoError(err)
	f = s.loadOut(out)
	s.Empty(f.Section("App").Key("LeftMouseUpAction").String())
	s.Equal(`["C:\a.exe"]`, f.Section("App").Key("LeftMouseDoubleClickAction").String())
}
