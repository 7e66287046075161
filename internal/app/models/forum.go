package models

import "time"

// ForumPost is a community forum post authored by any user
type ForumPost struct {
	ID           int64     `db:"id"`
	AuthorID     int64     `db:"author_id"`
	Title        string    `db:"title"`
	Body         string    `db:"body"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	AuthorName   string    `db:"-"`
	CommentCount int       `db:"-"`
}

// ForumComment is a reply on a forum post
type ForumComment struct {
	ID         int64     `db:"id"`
	PostID     int64     `db:"post_id"`
	AuthorID   int64     `db:"author_id"`
	Body       string    `db:"body"`
	CreatedAt  time.Time `db:"created_at"`
	AuthorName string    `db:"-"`
}
