package rest

import (
	"github.com/mbelkin/newsnotes/internal/newsroom"
	"github.com/mbelkin/newsnotes/internal/notes"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewNews(n newsroom.News) News {
	return News{
		NewsID: n.ID,
		Title:  n.Title,
		Text:   n.Text,
		Date:   n.Date,
	}
}

func NewComment(c newsroom.Comment) Comment {
	return Comment{
		CommentID: c.ID,
		NewsID:    c.NewsID,
		Author:    c.AuthorName,
		Text:      c.Text,
		Created:   c.Created,
	}
}

func NewNote(n notes.Note) Note {
	return Note{
		NoteID: n.ID,
		Title:  n.Title,
		Text:   n.Text,
		Slug:   n.Slug,
	}
}
