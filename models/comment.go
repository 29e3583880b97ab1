package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Comment is embedded in a Location. It cannot exist without its parent
// location and an author reference.
type Comment struct {
	CommentID string    `json:"id"`
	Author    UserRef   `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentRequest is the body of POST /api/locations/{id}/comments.
type CommentRequest struct {
	Text string `json:"text"`
}

// NewComment carries everything needed to attach a comment to a location.
type NewComment struct {
	LocationID string
	AuthorID   string
	Text       string
}

// Comments is the ordered list of comments stored as a JSONB document.
type Comments []Comment

// storedComment is the on-disk shape of a comment: only the author's id is
// persisted, the username is resolved on read.
type storedComment struct {
	CommentID string    `json:"comment_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Value implements [driver.Valuer].
func (c Comments) Value() (driver.Value, error) {
	stored := make([]storedComment, 0, len(c))
	for _, comment := range c {
		stored = append(stored, storedComment{
			CommentID: comment.CommentID,
			UserID:    comment.Author.UserID,
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt,
		})
	}

	b, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("error marshaling comments: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (c *Comments) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}

	var stored []storedComment
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &stored); err != nil {
			return fmt.Errorf("error unmarshaling comments: %w", err)
		}
	}

	comments := make(Comments, 0, len(stored))
	for _, s := range stored {
		comments = append(comments, Comment{
			CommentID: s.CommentID,
			Author:    UserRef{UserID: s.UserID},
			Text:      s.Text,
			CreatedAt: s.CreatedAt,
		})
	}
	*c = comments
	return nil
}

// AuthorIDs returns the distinct author ids in order of first appearance.
func (c Comments) AuthorIDs() []string {
	seen := make(map[string]struct{}, len(c))
	ids := make([]string, 0, len(c))
	for _, comment := range c {
		if _, ok := seen[comment.Author.UserID]; ok {
			continue
		}
		seen[comment.Author.UserID] = struct{}{}
		ids = append(ids, comment.Author.UserID)
	}
	return ids
}

// ImageURLs is the ordered list of public image paths stored as a JSONB
// document.
type ImageURLs []string

// Value implements [driver.Valuer].
func (u ImageURLs) Value() (driver.Value, error) {
	if u == nil {
		u = ImageURLs{}
	}
	b, err := json.Marshal([]string(u))
	if err != nil {
		return nil, fmt.Errorf("error marshaling image urls: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (u *ImageURLs) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}

	urls := make(ImageURLs, 0)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &urls); err != nil {
			return fmt.Errorf("error unmarshaling image urls: %w", err)
		}
	}
	*u = urls
	return nil
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("unsupported type for json document")
	}
}
