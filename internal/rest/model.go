package rest

import "time"

// Forms bind from POST bodies (urlencoded or JSON).

type CommentForm struct {
	Text string `json:"text" form:"text"`
}

type NoteForm struct {
	Title string `json:"title" form:"title"`
	Text  string `json:"text" form:"text"`
	Slug  string `json:"slug" form:"slug"`
}

type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Next     string `json:"next" form:"next" query:"next"`
}

type SignupForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// FormPage stands in for a rendered form template: the form values as
// submitted plus field-scoped errors. Validation failures answer 200 with
// this body and leave the store untouched.
type FormPage struct {
	Form   interface{}       `json:"form"`
	Errors map[string]string `json:"errors,omitempty"`
}

type News struct {
	NewsID int       `json:"newsId"`
	Title  string    `json:"title"`
	Text   string    `json:"text"`
	Date   time.Time `json:"date"`
}

type Comment struct {
	CommentID int       `json:"commentId"`
	NewsID    int       `json:"newsId"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Created   time.Time `json:"created"`
}

// NewsDetail carries the article, its comments in creation order and
// whether the comment form is offered (authenticated requesters only).
type NewsDetail struct {
	News
	Comments    []Comment `json:"comments"`
	CommentForm bool      `json:"commentForm"`
}

type Note struct {
	NoteID int    `json:"noteId"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Slug   string `json:"slug"`
}
