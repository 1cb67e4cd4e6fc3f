package store

// Selection state: the transient notion of "currently open note" and
// "currently browsed folder". Pure setters, never persisted, not part
// of any collection write.

// SelectNote sets the active note id (nil clears the selection). An id
// that matches no note clears the selection rather than pointing at
// nothing.
func (s *Store) SelectNote(id *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == nil || s.findNoteLocked(*id) == nil {
		s.selectedNote = nil
		return
	}
	v := *id
	s.selectedNote = &v
}

// SelectFolder sets the active folder id (nil = browsing root).
func (s *Store) SelectFolder(id *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == nil || s.findFolderLocked(*id) == nil {
		s.selectedFolder = nil
		return
	}
	v := *id
	s.selectedFolder = &v
}

// Selection returns the active note and folder ids, either may be nil.
func (s *Store) Selection() (noteID, folderID *string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedNote != nil {
		v := *s.selectedNote
		noteID = &v
	}
	if s.selectedFolder != nil {
		v := *s.selectedFolder
		folderID = &v
	}
	return noteID, folderID
}
