package model

import "time"

// DefaultBookmarkCategory is used when a bookmark is saved without a category.
const DefaultBookmarkCategory = "general"

// Bookmark is a web link a user saved in their catalogue.
type Bookmark struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	Tags        *string   `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"-"`
}

// BookmarkCategoryCount is the number of active bookmarks in one category.
type BookmarkCategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
