package model

// DefaultFolderColor is the color token assigned to folders created without
// an explicit color (grey).
const DefaultFolderColor = "0xFF9E9E9E"

// Folder is the flat persisted folder record. The tree shown while browsing
// is derived from these records, never stored.
type Folder struct {
	ID        string   `json:"id"`
	Tag       string   `json:"tag"`
	Parent    *string  `json:"parent"` // nil = root level
	TagGroups []string `json:"tagGroups"`
	Color     string   `json:"color"`
}

// NewFolderParams holds parameters for creating a new Folder.
type NewFolderParams struct {
	Tag       string
	Parent    *string
	TagGroups []string
	Color     string
}

// NewFolder creates a Folder with a generated UUID.
func NewFolder(params NewFolderParams) Folder {
	color := params.Color
	if color == "" {
		color = DefaultFolderColor
	}

	groups := params.TagGroups
	if groups == nil {
		groups = []string{}
	}

	return Folder{
		ID:        generateUUID(),
		Tag:       params.Tag,
		Parent:    params.Parent,
		TagGroups: groups,
		Color:     color,
	}
}
