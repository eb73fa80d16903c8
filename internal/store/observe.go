package store

import "github.com/hahn/maakmai/internal/model"

// ObserveFolders returns a stream that receives the full TagFolder forest
// after every folder mutation, starting with the current one. Slow receivers
// only ever see the latest forest; intermediate snapshots are dropped. The
// returned cancel func unsubscribes and closes the channel.
func (s *Store) ObserveFolders() (<-chan []model.TagFolder, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan []model.TagFolder, 1)
	id := s.nextSub
	s.nextSub++
	s.folderSubs[id] = ch
	ch <- model.BuildForest(s.snap.Folders)

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.folderSubs[id]; ok {
			delete(s.folderSubs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// ObserveBookmarks returns a stream that receives the full bookmark
// collection after every bookmark mutation, starting with the current one.
// Same latest-wins delivery as ObserveFolders.
func (s *Store) ObserveBookmarks() (<-chan []model.Bookmark, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan []model.Bookmark, 1)
	id := s.nextSub
	s.nextSub++
	s.bookmarkSubs[id] = ch

	bookmarks := make([]model.Bookmark, len(s.snap.Bookmarks))
	copy(bookmarks, s.snap.Bookmarks)
	ch <- bookmarks

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.bookmarkSubs[id]; ok {
			delete(s.bookmarkSubs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// publishFolders rebuilds the forest and offers it to every subscriber,
// replacing any value not yet consumed. Must be called with the lock held.
func (s *Store) publishFolders() {
	forest := model.BuildForest(s.snap.Folders)
	for _, ch := range s.folderSubs {
		select {
		case ch <- forest:
		default:
			// Drop the stale forest, then deliver the fresh one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- forest:
			default:
			}
		}
	}
}

// publishBookmarks offers the current bookmark collection to every
// subscriber with the same latest-wins semantics.
func (s *Store) publishBookmarks() {
	bookmarks := make([]model.Bookmark, len(s.snap.Bookmarks))
	copy(bookmarks, s.snap.Bookmarks)
	for _, ch := range s.bookmarkSubs {
		select {
		case ch <- bookmarks:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- bookmarks:
			default:
			}
		}
	}
}
