package model

import "time"

// Bookmark represents a saved link or note. Its place in the folder
// hierarchy is determined entirely by its tags.
type Bookmark struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	URL               *string   `json:"url"` // nil = plain note
	Tags              []string  `json:"tags"`
	ImageAttachmentID *string   `json:"imageAttachmentId"` // resolved outside the core
	CreatedAt         time.Time `json:"createdAt"`
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	Title       string
	Description string
	URL         *string
	Tags        []string
}

// NewBookmark creates a Bookmark with a generated UUID and timestamp.
func NewBookmark(params NewBookmarkParams) Bookmark {
	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	return Bookmark{
		ID:          generateUUID(),
		Title:       params.Title,
		Description: params.Description,
		URL:         params.URL,
		Tags:        tags,
		CreatedAt:   time.Now(),
	}
}

// HasTag reports whether the bookmark carries the given tag.
func (b Bookmark) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAllTags reports whether the bookmark carries every tag in tags.
func (b Bookmark) HasAllTags(tags []string) bool {
	for _, t := range tags {
		if !b.HasTag(t) {
			return false
		}
	}
	return true
}
