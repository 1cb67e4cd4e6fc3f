package persist

const (
	// KeyNotes holds the JSON array of all notes.
	KeyNotes = "writewell_notes"
	// KeyFolders holds the JSON array of all folders.
	KeyFolders = "writewell_folders"
	// KeyTags holds the JSON array of all tags.
	KeyTags = "writewell_tags"
	// KeyTheme holds the UI theme preference ("dark" or "light").
	// Kept with its historical dash for compatibility with existing data.
	KeyTheme = "writewell-theme"
)
