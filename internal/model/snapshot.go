package model

// Snapshot holds all folder records and bookmarks as persisted. Storage
// backends load and save it as a unit; everything else derives from it.
type Snapshot struct {
	Folders   []Folder   `json:"folders"`
	Bookmarks []Bookmark `json:"bookmarks"`
}

// NewSnapshot creates an empty Snapshot with initialized slices.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Folders:   []Folder{},
		Bookmarks: []Bookmark{},
	}
}

// FolderByID finds a folder record by ID, returns nil if not found.
func (s *Snapshot) FolderByID(id string) *Folder {
	for i := range s.Folders {
		if s.Folders[i].ID == id {
			return &s.Folders[i]
		}
	}
	return nil
}

// FolderByTag finds the first folder record with the given tag, returns nil
// if not found. Ties between records sharing a tag are arbitrary.
func (s *Snapshot) FolderByTag(tag string) *Folder {
	for i := range s.Folders {
		if s.Folders[i].Tag == tag {
			return &s.Folders[i]
		}
	}
	return nil
}

// BookmarkByID finds a bookmark by ID, returns nil if not found.
func (s *Snapshot) BookmarkByID(id string) *Bookmark {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			return &s.Bookmarks[i]
		}
	}
	return nil
}

// ChildFolders returns the folder records whose parent is the given id.
func (s *Snapshot) ChildFolders(id string) []Folder {
	var result []Folder
	for _, f := range s.Folders {
		if f.Parent != nil && *f.Parent == id {
			result = append(result, f)
		}
	}
	return result
}

// Clone returns a deep-enough copy of the snapshot for handing out to
// observers: the slices are copied, the elements are value types.
func (s *Snapshot) Clone() *Snapshot {
	clone := &Snapshot{
		Folders:   make([]Folder, len(s.Folders)),
		Bookmarks: make([]Bookmark, len(s.Bookmarks)),
	}
	copy(clone.Folders, s.Folders)
	copy(clone.Bookmarks, s.Bookmarks)
	return clone
}
