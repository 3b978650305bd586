package newsroom

import (
	"github.com/mbelkin/newsnotes/internal/db"
)

type News struct {
	db.News
}

type Comment struct {
	db.Comment
	AuthorName string
}
