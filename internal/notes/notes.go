package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/mbelkin/newsnotes/internal/db"
	"github.com/mbelkin/newsnotes/internal/forms"
)

// WarningSlugTaken is appended to the offending slug value in the field
// error on a duplicate slug.
const WarningSlugTaken = " - this slug is already taken, it must be unique."

// ErrNotFound is returned when the requested note does not exist or
// belongs to another user. The two cases are deliberately
// indistinguishable so the existence of other users' notes is not leaked.
var ErrNotFound = errors.New("note not found")

type Manager struct {
	db *db.Repository
}

func NewManager(repo *db.Repository) *Manager {
	return &Manager{
		db: repo,
	}
}

// List retrieves the requester's own notes. Notes of other users are
// filtered out, not denied.
func (m *Manager) List(ctx context.Context, requesterID int) ([]Note, error) {
	dbNotes, err := m.db.NotesByAuthorID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("db get notes: %w", err)
	}

	return NewNoteList(dbNotes), nil
}

// BySlugForUser retrieves a note if it belongs to the requester,
// ErrNotFound otherwise.
func (m *Manager) BySlugForUser(ctx context.Context, noteSlug string, requesterID int) (*Note, error) {
	dbNote, err := m.db.NoteBySlug(ctx, noteSlug)
	if err != nil {
		return nil, fmt.Errorf("db get note by slug: %w", err)
	} else if dbNote == nil || dbNote.AuthorID != requesterID {
		return nil, ErrNotFound
	}

	note := NewNote(dbNote)
	return &note, nil
}

// Create persists a new note for the author. An empty slug is derived
// from the title by transliteration. A slug already present anywhere in
// the store, whichever user owns it, is rejected with a field error and
// the store stays unchanged. The unique index on notes.slug backs the
// pre-check against concurrent creates.
func (m *Manager) Create(ctx context.Context, authorID int, title, text, noteSlug string) (*Note, error) {
	noteSlug, err := m.resolveSlug(ctx, title, noteSlug, 0)
	if err != nil {
		return nil, err
	}

	dbNote := &db.Note{
		Title:    title,
		Text:     text,
		Slug:     noteSlug,
		AuthorID: authorID,
	}
	if err := m.db.AddNote(ctx, dbNote); err != nil {
		if errors.Is(err, db.ErrSlugTaken) {
			return nil, slugTakenError(noteSlug)
		}
		return nil, fmt.Errorf("db add note: %w", err)
	}

	note := NewNote(dbNote)
	return &note, nil
}

// Update edits the requester's own note. The note may keep its current
// slug; any other colliding slug is rejected the same way as on create.
func (m *Manager) Update(ctx context.Context, noteSlug string, requesterID int, title, text, newSlug string) (*Note, error) {
	note, err := m.BySlugForUser(ctx, noteSlug, requesterID)
	if err != nil {
		return nil, err
	}

	newSlug, err = m.resolveSlug(ctx, title, newSlug, note.ID)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Text = text
	note.Slug = newSlug
	if err := m.db.UpdateNote(ctx, &note.Note); err != nil {
		if errors.Is(err, db.ErrSlugTaken) {
			return nil, slugTakenError(newSlug)
		}
		return nil, fmt.Errorf("db update note: %w", err)
	}

	return note, nil
}

// Delete removes the requester's own note.
func (m *Manager) Delete(ctx context.Context, noteSlug string, requesterID int) error {
	note, err := m.BySlugForUser(ctx, noteSlug, requesterID)
	if err != nil {
		return err
	}

	if err := m.db.DeleteNote(ctx, note.ID); err != nil {
		return fmt.Errorf("db delete note: %w", err)
	}

	return nil
}

// resolveSlug derives an empty slug from the title and enforces
// uniqueness. A derived slug that collides is rejected exactly like a
// supplied one.
func (m *Manager) resolveSlug(ctx context.Context, title, noteSlug string, excludeID int) (string, error) {
	if noteSlug == "" {
		noteSlug = slug.Make(title)
	}

	exists, err := m.db.NoteSlugExists(ctx, noteSlug, excludeID)
	if err != nil {
		return "", fmt.Errorf("db check note slug: %w", err)
	}
	if exists {
		return "", slugTakenError(noteSlug)
	}

	return noteSlug, nil
}

func slugTakenError(noteSlug string) *forms.Error {
	return forms.FieldError("slug", noteSlug+WarningSlugTaken)
}
