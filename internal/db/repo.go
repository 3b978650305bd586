package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

var (
	// ErrSlugTaken is reported when an insert or update hits the unique
	// index on notes.slug. The index is the arbiter for concurrent creates;
	// callers translate this into the duplicate-slug validation error.
	ErrSlugTaken = errors.New("note slug already exists")

	// ErrUsernameTaken is reported on the users.username unique index.
	ErrUsernameTaken = errors.New("username already exists")
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr pg.Error
	if !errors.As(err, &pgErr) || !pgErr.IntegrityViolation() {
		return false
	}
	if pgErr.Field('C') != "23505" {
		return false
	}
	return constraint == "" || pgErr.Field('n') == constraint
}

// News retrieves the latest news sorted by date DESC, capped at limit.
func (r *Repository) News(ctx context.Context, limit int) ([]News, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var news []News
	err := r.db.ModelContext(ctx, &news).
		OrderExpr(`"t"."date" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*News)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get news count: %w", err)
	}

	return count, nil
}

func (r *Repository) NewsByID(ctx context.Context, newsID int) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Where(`"t"."newsId" = ?`, newsID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

// CommentsByNewsID retrieves all comments of a news item sorted by
// created ASC, with the author relation loaded.
func (r *Repository) CommentsByNewsID(ctx context.Context, newsID int) ([]Comment, error) {
	var comments []Comment
	err := r.db.ModelContext(ctx, &comments).
		Relation("Author").
		Where(`"t"."newsId" = ?`, newsID).
		OrderExpr(`"t"."created" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

func (r *Repository) CommentByID(ctx context.Context, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation("Author").
		Where(`"t"."commentId" = ?`, commentID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

// AddComment inserts a comment. Created is server-assigned unless the
// caller pre-set it (tests seed staggered timestamps this way).
func (r *Repository) AddComment(ctx context.Context, comment *Comment) error {
	if comment.Created.IsZero() {
		comment.Created = time.Now()
	}

	if _, err := r.db.ModelContext(ctx, comment).Insert(); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// UpdateCommentText updates the text column only. Author and news of a
// comment are fixed at creation.
func (r *Repository) UpdateCommentText(ctx context.Context, comment *Comment) error {
	_, err := r.db.ModelContext(ctx, comment).
		Column(Columns.Comment.Text).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	return nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID int) error {
	_, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."commentId" = ?`, commentID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

// NotesByAuthorID retrieves all notes of one author. Notes of other
// authors are never returned by any notes query in this repository.
func (r *Repository) NotesByAuthorID(ctx context.Context, authorID int) ([]Note, error) {
	var notes []Note
	err := r.db.ModelContext(ctx, &notes).
		Where(`"t"."authorId" = ?`, authorID).
		OrderExpr(`"t"."noteId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}

	return notes, nil
}

func (r *Repository) NoteBySlug(ctx context.Context, slug string) (*Note, error) {
	note := &Note{}
	err := r.db.ModelContext(ctx, note).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get note by slug: %w", err)
	}

	return note, nil
}

// NoteSlugExists reports whether any note other than excludeID carries
// the slug. Pass excludeID=0 for creation checks.
func (r *Repository) NoteSlugExists(ctx context.Context, slug string, excludeID int) (bool, error) {
	query := r.db.ModelContext(ctx, (*Note)(nil)).
		Where(`"t"."slug" = ?`, slug)

	if excludeID != 0 {
		query = query.Where(`"t"."noteId" != ?`, excludeID)
	}

	exists, err := query.Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check note slug: %w", err)
	}

	return exists, nil
}

func (r *Repository) AddNote(ctx context.Context, note *Note) error {
	if _, err := r.db.ModelContext(ctx, note).Insert(); err != nil {
		if isUniqueViolation(err, "notes_slug_key") {
			return ErrSlugTaken
		}
		return fmt.Errorf("failed to insert note: %w", err)
	}

	return nil
}

func (r *Repository) UpdateNote(ctx context.Context, note *Note) error {
	_, err := r.db.ModelContext(ctx, note).
		Column(Columns.Note.Title, Columns.Note.Text, Columns.Note.Slug).
		WherePK().
		Update()
	if err != nil {
		if isUniqueViolation(err, "notes_slug_key") {
			return ErrSlugTaken
		}
		return fmt.Errorf("failed to update note: %w", err)
	}

	return nil
}

func (r *Repository) DeleteNote(ctx context.Context, noteID int) error {
	_, err := r.db.ModelContext(ctx, (*Note)(nil)).
		Where(`"t"."noteId" = ?`, noteID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."username" = ?`, username).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *Repository) UserByID(ctx context.Context, userID int) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."userId" = ?`, userID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, user *User) error {
	if user.Created.IsZero() {
		user.Created = time.Now()
	}

	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
