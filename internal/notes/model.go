package notes

import (
	"github.com/mbelkin/newsnotes/internal/db"
)

type Note struct {
	db.Note
}

func NewNote(n *db.Note) Note {
	return Note{Note: *n}
}

func NewNoteList(list []db.Note) []Note {
	result := make([]Note, len(list))
	for i := range list {
		result[i] = NewNote(&list[i])
	}
	return result
}
