package newsroom

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mbelkin/newsnotes/internal/db"
	"github.com/mbelkin/newsnotes/internal/forms"
)

// WarningBadWords is the field error shown when a comment contains a
// disallowed word.
const WarningBadWords = "Watch your language!"

// ErrNotFound is returned by mutating operations when the target comment
// does not exist or belongs to another user. The two cases are
// deliberately indistinguishable so that the existence of other users'
// comments is not leaked.
var ErrNotFound = errors.New("comment not found")

type Manager struct {
	db           *db.Repository
	homePageSize int
	badWords     []string
}

func NewManager(repo *db.Repository, homePageSize int, badWords []string) *Manager {
	return &Manager{
		db:           repo,
		homePageSize: homePageSize,
		badWords:     badWords,
	}
}

// HomePage retrieves the latest news sorted by date DESC, capped at the
// configured home page size.
func (m *Manager) HomePage(ctx context.Context) ([]News, error) {
	dbNews, err := m.db.News(ctx, m.homePageSize)
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	return NewNewsList(dbNews), nil
}

func (m *Manager) NewsCount(ctx context.Context) (int, error) {
	count, err := m.db.NewsCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("db get news count: %w", err)
	}

	return count, nil
}

func (m *Manager) NewsByID(ctx context.Context, newsID int) (*News, error) {
	dbNews, err := m.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if dbNews == nil {
		return nil, nil
	}

	news := NewNews(dbNews)
	return &news, nil
}

// Comments retrieves all comments of a news item in creation order.
func (m *Manager) Comments(ctx context.Context, newsID int) ([]Comment, error) {
	dbComments, err := m.db.CommentsByNewsID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	return NewComments(dbComments), nil
}

// AddComment validates text against the bad-words list and persists a new
// comment attributed to the author. Returns a *forms.Error when the text
// is rejected; the store is untouched in that case.
func (m *Manager) AddComment(ctx context.Context, newsID, authorID int, text string) (*Comment, error) {
	news, err := m.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if news == nil {
		return nil, ErrNotFound
	}

	if err := m.validateText(text); err != nil {
		return nil, err
	}

	dbComment := &db.Comment{
		NewsID:   newsID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := m.db.AddComment(ctx, dbComment); err != nil {
		return nil, fmt.Errorf("db add comment: %w", err)
	}

	comment := NewComment(dbComment)
	return &comment, nil
}

// CommentForUser retrieves a comment if it belongs to the requester,
// ErrNotFound otherwise.
func (m *Manager) CommentForUser(ctx context.Context, commentID, requesterID int) (*Comment, error) {
	dbComment, err := m.db.CommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("db get comment by id: %w", err)
	} else if dbComment == nil || dbComment.AuthorID != requesterID {
		return nil, ErrNotFound
	}

	comment := NewComment(dbComment)
	return &comment, nil
}

// EditComment updates the text of the requester's own comment. Author and
// news are never reassigned.
func (m *Manager) EditComment(ctx context.Context, commentID, requesterID int, text string) (*Comment, error) {
	comment, err := m.CommentForUser(ctx, commentID, requesterID)
	if err != nil {
		return nil, err
	}

	if err := m.validateText(text); err != nil {
		return nil, err
	}

	comment.Text = text
	if err := m.db.UpdateCommentText(ctx, &comment.Comment); err != nil {
		return nil, fmt.Errorf("db update comment: %w", err)
	}

	return comment, nil
}

// DeleteComment removes the requester's own comment and returns it so the
// caller can redirect to the parent news item.
func (m *Manager) DeleteComment(ctx context.Context, commentID, requesterID int) (*Comment, error) {
	comment, err := m.CommentForUser(ctx, commentID, requesterID)
	if err != nil {
		return nil, err
	}

	if err := m.db.DeleteComment(ctx, comment.ID); err != nil {
		return nil, fmt.Errorf("db delete comment: %w", err)
	}

	return comment, nil
}

// validateText rejects text containing any configured bad word as a
// case-sensitive substring. Emptiness and length are not checked here.
func (m *Manager) validateText(text string) error {
	for _, word := range m.badWords {
		if strings.Contains(text, word) {
			return forms.FieldError("text", WarningBadWords)
		}
	}
	return nil
}
