package skin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/7eventy7/luckydock/internal/dock"
	"github.com/7eventy7/luckydock/internal/filesys"
	"github.com/7eventy7/luckydock/internal/mocks"
)

type StoreTestSuite struct {
	suite.Suite
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) testDoc() *Document {
	return &Document{
		Entries: []dock.Entry{
			{Name: "Notepad", AppPath: `"C:\Windows\notepad.exe"`, IconPath: `Icons\notepad.png`},
			{Name: "Separator_1", Separator: true},
		},
		Settings: dock.DefaultSettings(),
	}
}

func (s *StoreTestSuite) TestLoadMissingFile() {
	const path = `C:\Skins\LuckyDock\LuckyDock 1\LuckyDock.ini`

	mockFS := &mocks.MockOsFS{}
	mockFS.On("ReadFile", path).Return(nil, os.ErrNotExist)

	_, err := NewStore(mockFS, 3).Load(path)
	s.Require().Error(err)
	s.ErrorIs(err, ErrNotFound)
	mockFS.AssertExpectations(s.T())
}

func (s *StoreTestSuite) TestLoadReadError() {
	const path = "LuckyDock.ini"

	mockFS := &mocks.MockOsFS{}
	mockFS.On("ReadFile", path).Return(nil, os.ErrPermission)

	_, err := NewStore(mockFS, 3).Load(path)
	s.Require().Error(err)
	s.NotErrorIs(err, ErrNotFound)
}

func (s *StoreTestSuite) TestSaveThenLoad() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "LuckyDock.ini")
	store := NewStore(filesys.OS(), 3)

	doc := s.testDoc()
	s.Require().NoError(store.Save(path, doc))

	got, err := store.Load(path)
	s.Require().NoError(err)
	s.Equal(doc.Entries, got.Entries)
	s.Equal(doc.Settings, got.Settings)

	// First write of a fresh file has nothing to back up.
	_, err = os.Stat(filepath.Join(dir, backupDir))
	s.True(os.IsNotExist(err))
}

func (s *StoreTestSuite) TestSavePrunesBackups() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "LuckyDock.ini")
	store := NewStore(filesys.OS(), 2)

	doc := s.testDoc()
	for i := 0; i < 6; i++ {
		doc.Settings.IconSize = 32 + i
		s.Require().NoError(store.Save(path, doc))
	}

	entries, err := os.ReadDir(filepath.Join(dir, backupDir))
	s.Require().NoError(err)
	s.Len(entries, 2)
	for _, ent := range entries {
		s.Contains(ent.Name(), "LuckyDock.ini.")
	}
}

func (s *StoreTestSuite) TestSaveKeepZeroDisablesBackups() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "LuckyDock.ini")
	store := NewStore(filesys.OS(), 0)

	doc := s.testDoc()
	s.Require().NoError(store.Save(path, doc))
	s.Require().NoError(store.Save(path, doc))

	_, err := os.Stat(filepath.Join(dir, backupDir))
	s.True(os.IsNotExist(err))
}

func (s *StoreTestSuite) TestSaveInvalidDocLeavesFileAlone() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "LuckyDock.ini")
	store := NewStore(filesys.OS(), 3)

	doc := s.testDoc()
	s.Require().NoError(store.Save(path, doc))

	bad := &Document{
		Entries:  []dock.Entry{{Name: "  "}},
		Settings: dock.DefaultSettings(),
	}
	err := store.Save(path, bad)
	s.Require().Error(err)
	s.ErrorIs(err, dock.ErrEmptyName)

	got, err := store.Load(path)
	s.Require().NoError(err)
	s.Equal(doc.Entries, got.Entries)
}

func (s *StoreTestSuite) TestSavePreservesReservedSections() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "LuckyDock.ini")
	seed := "[Rainmeter]\nUpdate=1000\n\n[Metadata]\nAuthor=7eventy7\n"
	s.Require().NoError(os.WriteFile(path, []byte(seed), 0o644))

	store := NewStore(filesys.OS(), 3)
	s.Require().NoError(store.Save(path, s.testDoc()))

	out, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Contains(string(out), "Update=1000")
	s.Contains(string(out), "Author=7eventy7")
}

func (s *StoreTestSuite) TestRemoveLastEntrySaveSucceeds() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "LuckyDock.ini")
	store := NewStore(filesys.OS(), 3)

	s.Require().NoError(store.Save(path, s.testDoc()))

	empty := &Document{Settings: dock.DefaultSettings()}
	s.Require().NoError(store.Save(path, empty))

	got, err := store.Load(path)
	s.Require().NoError(err)
	s.Empty(got.Entries)
}
