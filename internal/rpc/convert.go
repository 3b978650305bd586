package rpc

import "github.com/mbelkin/newsnotes/internal/newsroom"

func NewNews(n newsroom.News) News {
	return News{
		NewsID: n.ID,
		Title:  n.Title,
		Text:   n.Text,
		Date:   n.Date,
	}
}

func NewNewsList(list []newsroom.News) []News {
	result := make([]News, len(list))
	for i := range list {
		result[i] = NewNews(list[i])
	}
	return result
}

func NewComment(c newsroom.Comment) Comment {
	return Comment{
		CommentID: c.ID,
		Author:    c.AuthorName,
		Text:      c.Text,
		Created:   c.Created,
	}
}

func NewComments(list []newsroom.Comment) []Comment {
	result := make([]Comment, len(list))
	for i := range list {
		result[i] = NewComment(list[i])
	}
	return result
}
