package newsroom

import "github.com/mbelkin/newsnotes/internal/db"

func NewNews(n *db.News) News {
	return News{News: *n}
}

func NewNewsList(list []db.News) []News {
	result := make([]News, len(list))
	for i := range list {
		result[i] = NewNews(&list[i])
	}
	return result
}

func NewComment(c *db.Comment) Comment {
	comment := Comment{Comment: *c}
	if c.Author != nil {
		comment.AuthorName = c.Author.Username
	}
	return comment
}

func NewComments(list []db.Comment) []Comment {
	result := make([]Comment, len(list))
	for i := range list {
		result[i] = NewComment(&list[i])
	}
	return result
}
