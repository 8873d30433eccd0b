package domain

import "time"

type News struct {
	ID          string
	Title       string
	Body        string
	AuthorID    string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Comment struct {
	ID        string
	NewsID    string
	AuthorID  string
	Body      string
	CreatedAt time.Time
}
