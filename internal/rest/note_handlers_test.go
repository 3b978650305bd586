package rest

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/gosimple/slug"

	"github.com/mbelkin/newsnotes/internal/db"
	"github.com/mbelkin/newsnotes/internal/notes"
)

func noteBySlug(t *testing.T, noteSlug string) *db.Note {
	t.Helper()
	note, err := testRepo.NoteBySlug(context.Background(), noteSlug)
	if err != nil {
		t.Fatalf("failed to get note: %v", err)
	}
	return note
}

func notesOf(t *testing.T, authorID int) []db.Note {
	t.Helper()
	noteList, err := testRepo.NotesByAuthorID(context.Background(), authorID)
	if err != nil {
		t.Fatalf("failed to query notes: %v", err)
	}
	return noteList
}

func TestAddNote(t *testing.T) {
	form := url.Values{
		"title": {"New title"},
		"text":  {"New text"},
		"slug":  {"new_slug"},
	}

	t.Run("AnonymousRedirectedAndStoreUnchanged", func(t *testing.T) {
		f := resetData(t)
		before := len(notesOf(t, f.author.ID))

		rec := doRequest(t, http.MethodPost, NoteAddPath, form, nil)
		if rec.Code != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, rec.Code)
		}
		want := LoginPath + "?next=" + NoteAddPath
		if got := rec.Header().Get("Location"); got != want {
			t.Errorf("expected redirect to %q, got %q", want, got)
		}

		if after := len(notesOf(t, f.author.ID)); after != before {
			t.Errorf("note count changed: before=%d after=%d", before, after)
		}
	})

	t.Run("AuthenticatedCreatesAndRedirects", func(t *testing.T) {
		f := resetData(t)

		rec := doRequest(t, http.MethodPost, NoteAddPath, form, identityOf(f.author))
		if rec.Code != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != NoteSuccessPath {
			t.Errorf("expected redirect to %q, got %q", NoteSuccessPath, got)
		}

		created := noteBySlug(t, "new_slug")
		if created == nil {
			t.Fatal("note not persisted")
		}
		if created.Title != "New title" {
			t.Errorf("expected title %q, got %q", "New title", created.Title)
		}
		if created.Text != "New text" {
			t.Errorf("expected text %q, got %q", "New text", created.Text)
		}
		if created.AuthorID != f.author.ID {
			t.Errorf("expected author %d, got %d", f.author.ID, created.AuthorID)
		}
	})

	t.Run("OmittedSlugDerivedFromTitle", func(t *testing.T) {
		f := resetData(t)

		title := "Title without a slug"
		rec := doRequest(t, http.MethodPost, NoteAddPath,
			url.Values{"title": {title}, "text": {"Text"}}, identityOf(f.author))
		if rec.Code != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, rec.Code)
		}

		if created := noteBySlug(t, slug.Make(title)); created == nil {
			t.Errorf("expected note under derived slug %q", slug.Make(title))
		}
	})

	t.Run("DuplicateSlugRejectedStoreUnchanged", func(t *testing.T) {
		f := resetData(t)
		before := len(notesOf(t, f.author.ID))

		dupForm := url.Values{
			"title": {"Another title"},
			"text":  {"Another text"},
			"slug":  {f.noteSlug},
		}
		rec := doRequest(t, http.MethodPost, NoteAddPath, dupForm, identityOf(f.author))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var page formPageBody
		decodeJSON(t, rec, &page)
		if want := f.noteSlug + notes.WarningSlugTaken; page.Errors["slug"] != want {
			t.Errorf("expected slug error %q, got %q", want, page.Errors["slug"])
		}

		if after := len(notesOf(t, f.author.ID)); after != before {
			t.Errorf("note count changed: before=%d after=%d", before, after)
		}
	})
}

func TestNoteList_OwnNotesOnly(t *testing.T) {
	f := resetData(t)

	rec := doRequest(t, http.MethodGet, NoteListPath, nil, identityOf(f.author))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var ownList []Note
	decodeJSON(t, rec, &ownList)
	if len(ownList) != 1 || ownList[0].Slug != f.noteSlug {
		t.Errorf("expected the seeded note only, got %+v", ownList)
	}

	rec = doRequest(t, http.MethodGet, NoteListPath, nil, identityOf(f.reader))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var otherList []Note
	decodeJSON(t, rec, &otherList)
	if len(otherList) != 0 {
		t.Errorf("expected no notes for the reader, got %+v", otherList)
	}
}

func TestNoteDetail_Content(t *testing.T) {
	f := resetData(t)

	rec := doRequest(t, http.MethodGet, NoteDetailPath(f.noteSlug), nil, identityOf(f.author))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var note Note
	decodeJSON(t, rec, &note)
	if note.Title != "Note title" || note.Text != "Note text" || note.Slug != f.noteSlug {
		t.Errorf("unexpected note body: %+v", note)
	}
}

func TestEditNote(t *testing.T) {
	form := url.Values{
		"title": {"Updated title"},
		"text":  {"Updated text"},
		"slug":  {"updated_slug"},
	}

	t.Run("OwnerCanUpdateAllFields", func(t *testing.T) {
		f := resetData(t)

		rec := doRequest(t, http.MethodPost, NoteEditPath(f.noteSlug), form, identityOf(f.author))
		if rec.Code != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != NoteSuccessPath {
			t.Errorf("expected redirect to %q, got %q", NoteSuccessPath, got)
		}

		updated := noteBySlug(t, "updated_slug")
		if updated == nil {
			t.Fatal("updated note not found under new slug")
		}
		if updated.Title != "Updated title" || updated.Text != "Updated text" {
			t.Errorf("unexpected note after update: %+v", updated)
		}
		if updated.AuthorID != f.author.ID {
			t.Errorf("author reassigned: %d", updated.AuthorID)
		}
	})

	t.Run("OwnSlugMayBeKept", func(t *testing.T) {
		f := resetData(t)

		keepForm := url.Values{
			"title": {"Updated title"},
			"text":  {"Updated text"},
			"slug":  {f.noteSlug},
		}
		rec := doRequest(t, http.MethodPost, NoteEditPath(f.noteSlug), keepForm, identityOf(f.author))
		if rec.Code != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, rec.Code)
		}
	})

	t.Run("ForeignSlugRejected", func(t *testing.T) {
		f := resetData(t)

		other := &db.Note{Title: "Other", Text: "Text", Slug: "other_slug", AuthorID: f.author.ID}
		if err := testRepo.AddNote(context.Background(), other); err != nil {
			t.Fatalf("failed to seed note: %v", err)
		}

		collideForm := url.Values{
			"title": {"Title"},
			"text":  {"Text"},
			"slug":  {"other_slug"},
		}
		rec := doRequest(t, http.MethodPost, NoteEditPath(f.noteSlug), collideForm, identityOf(f.author))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var page formPageBody
		decodeJSON(t, rec, &page)
		if want := "other_slug" + notes.WarningSlugTaken; page.Errors["slug"] != want {
			t.Errorf("expected slug error %q, got %q", want, page.Errors["slug"])
		}
	})

	t.Run("NonOwnerGetsNotFoundAndNoChange", func(t *testing.T) {
		f := resetData(t)
		before := noteBySlug(t, f.noteSlug)

		rec := doRequest(t, http.MethodPost, NoteEditPath(f.noteSlug), form, identityOf(f.reader))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
		}

		after := noteBySlug(t, f.noteSlug)
		if after == nil {
			t.Fatal("note vanished")
		}
		if after.Title != before.Title || after.Text != before.Text ||
			after.Slug != before.Slug || after.AuthorID != before.AuthorID {
			t.Errorf("note changed by non-owner: %+v", after)
		}
	})
}

func TestDeleteNote(t *testing.T) {
	t.Run("OwnerCanDelete", func(t *testing.T) {
		f := resetData(t)

		rec := doRequest(t, http.MethodPost, NoteDeletePath(f.noteSlug), nil, identityOf(f.author))
		if rec.Code != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != NoteSuccessPath {
			t.Errorf("expected redirect to %q, got %q", NoteSuccessPath, got)
		}

		if noteBySlug(t, f.noteSlug) != nil {
			t.Error("note still present after delete")
		}
	})

	t.Run("DeleteMethodAlsoAccepted", func(t *testing.T) {
		f := resetData(t)

		rec := doRequest(t, http.MethodDelete, NoteDeletePath(f.noteSlug), nil, identityOf(f.author))
		if rec.Code != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, rec.Code)
		}
	})

	t.Run("NonOwnerGetsNotFoundAndNoChange", func(t *testing.T) {
		f := resetData(t)

		rec := doRequest(t, http.MethodPost, NoteDeletePath(f.noteSlug), nil, identityOf(f.reader))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
		}

		if noteBySlug(t, f.noteSlug) == nil {
			t.Error("note deleted by non-owner")
		}
	})
}
