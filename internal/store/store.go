// Package store owns the authoritative folder and bookmark collections.
// It wraps a storage backend, serializes mutations, derives the TagFolder
// forest from the flat folder records, and re-publishes both collections to
// observers after every change.
package store

import (
	"errors"
	"sync"

	"github.com/hahn/maakmai/internal/model"
	"github.com/hahn/maakmai/internal/storage"
)

var (
	// ErrFolderNotFound is returned when an id resolves to no folder record.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrFolderHasChildren is returned by DeleteFolder for folders with
	// direct children. Deletion never cascades; children must go first.
	ErrFolderHasChildren = errors.New("folder has child folders")

	// ErrEmptyTag is returned when a folder is created or updated without
	// a display tag.
	ErrEmptyTag = errors.New("folder tag is empty")

	// ErrDuplicateID is returned when a create collides with an existing id.
	ErrDuplicateID = errors.New("id already exists")

	// ErrBookmarkNotFound is returned when an id resolves to no bookmark.
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

// Store holds the current snapshot and persists every mutation through its
// backend as a whole. Reads return copies; callers never share state with
// the store.
type Store struct {
	mu      sync.Mutex
	backend storage.Storage
	snap    *model.Snapshot

	folderSubs   map[int]chan []model.TagFolder
	bookmarkSubs map[int]chan []model.Bookmark
	nextSub      int
}

// Open loads the current snapshot from the backend.
func Open(backend storage.Storage) (*Store, error) {
	snap, err := backend.Load()
	if err != nil {
		return nil, err
	}
	return &Store{
		backend:      backend,
		snap:         snap,
		folderSubs:   make(map[int]chan []model.TagFolder),
		bookmarkSubs: make(map[int]chan []model.Bookmark),
	}, nil
}

// CreateFolder adds a folder record and publishes the rebuilt forest.
func (s *Store) CreateFolder(f model.Folder) error {
	if f.Tag == "" {
		return ErrEmptyTag
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.FolderByID(f.ID) != nil {
		return ErrDuplicateID
	}

	next := s.snap.Clone()
	next.Folders = append(next.Folders, f)
	return s.commit(next, true, false)
}

// UpdateFolder replaces the record with the same id.
func (s *Store) UpdateFolder(f model.Folder) error {
	if f.Tag == "" {
		return ErrEmptyTag
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	existing := next.FolderByID(f.ID)
	if existing == nil {
		return ErrFolderNotFound
	}
	*existing = f
	return s.commit(next, true, false)
}

// DeleteFolder removes the record with the given id. Folders with direct
// children are rejected with ErrFolderHasChildren so a subtree can never
// disappear through a single call.
func (s *Store) DeleteFolder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.FolderByID(id) == nil {
		return ErrFolderNotFound
	}
	if len(s.snap.ChildFolders(id)) > 0 {
		return ErrFolderHasChildren
	}

	next := s.snap.Clone()
	for i := range next.Folders {
		if next.Folders[i].ID == id {
			next.Folders = append(next.Folders[:i], next.Folders[i+1:]...)
			break
		}
	}
	return s.commit(next, true, false)
}

// FolderByID returns a copy of the folder record, or nil if not found.
func (s *Store) FolderByID(id string) *model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f := s.snap.FolderByID(id); f != nil {
		copied := *f
		return &copied
	}
	return nil
}

// FolderByTag returns a copy of the first folder record with the given tag,
// or nil if not found.
func (s *Store) FolderByTag(tag string) *model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f := s.snap.FolderByTag(tag); f != nil {
		copied := *f
		return &copied
	}
	return nil
}

// Folders returns a copy of all folder records.
func (s *Store) Folders() []model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()

	folders := make([]model.Folder, len(s.snap.Folders))
	copy(folders, s.snap.Folders)
	return folders
}

// RootFolders derives the current TagFolder forest. Each call rebuilds from
// the flat records; nothing is cached across snapshots.
func (s *Store) RootFolders() []model.TagFolder {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.BuildForest(s.snap.Folders)
}

// CreateBookmark adds a bookmark and publishes the new collection.
func (s *Store) CreateBookmark(b model.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.BookmarkByID(b.ID) != nil {
		return ErrDuplicateID
	}

	next := s.snap.Clone()
	next.Bookmarks = append(next.Bookmarks, b)
	return s.commit(next, false, true)
}

// UpdateBookmark replaces the bookmark with the same id.
func (s *Store) UpdateBookmark(b model.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	existing := next.BookmarkByID(b.ID)
	if existing == nil {
		return ErrBookmarkNotFound
	}
	*existing = b
	return s.commit(next, false, true)
}

// DeleteBookmark removes the bookmark with the given id.
func (s *Store) DeleteBookmark(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	found := false
	for i := range next.Bookmarks {
		if next.Bookmarks[i].ID == id {
			next.Bookmarks = append(next.Bookmarks[:i], next.Bookmarks[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return ErrBookmarkNotFound
	}
	return s.commit(next, false, true)
}

// BookmarkByID returns a copy of the bookmark, or nil if not found.
func (s *Store) BookmarkByID(id string) *model.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b := s.snap.BookmarkByID(id); b != nil {
		copied := *b
		return &copied
	}
	return nil
}

// Bookmarks returns a copy of the bookmark collection in insertion order.
func (s *Store) Bookmarks() []model.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks := make([]model.Bookmark, len(s.snap.Bookmarks))
	copy(bookmarks, s.snap.Bookmarks)
	return bookmarks
}

// TagsWithCount returns the tag vocabulary: every distinct tag across all
// bookmarks mapped to the number of bookmarks carrying it.
func (s *Store) TagsWithCount() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, b := range s.snap.Bookmarks {
		for _, tag := range b.Tags {
			counts[tag]++
		}
	}
	return counts
}

// commit persists the candidate snapshot and, only on success, makes it
// current and notifies observers. Must be called with the lock held.
func (s *Store) commit(next *model.Snapshot, folders, bookmarks bool) error {
	if err := s.backend.Save(next); err != nil {
		return err
	}
	s.snap = next

	if folders {
		s.publishFolders()
	}
	if bookmarks {
		s.publishBookmarks()
	}
	return nil
}
