// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Comment struct {
		ID, NewsID, AuthorID, Text, Created string

		Author, News string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	News struct {
		ID, Title, Text, Date string
	}
	Note struct {
		ID, Title, Text, Slug, AuthorID string

		Author string
	}
	User struct {
		ID, Username, PasswordHash, Created string
	}
}{
	Comment: struct {
		ID, NewsID, AuthorID, Text, Created string

		Author, News string
	}{
		ID:       "commentId",
		NewsID:   "newsId",
		AuthorID: "authorId",
		Text:     "text",
		Created:  "created",

		Author: "Author",
		News:   "News",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	News: struct {
		ID, Title, Text, Date string
	}{
		ID:    "newsId",
		Title: "title",
		Text:  "text",
		Date:  "date",
	},
	Note: struct {
		ID, Title, Text, Slug, AuthorID string

		Author string
	}{
		ID:       "noteId",
		Title:    "title",
		Text:     "text",
		Slug:     "slug",
		AuthorID: "authorId",

		Author: "Author",
	},
	User: struct {
		ID, Username, PasswordHash, Created string
	}{
		ID:           "userId",
		Username:     "username",
		PasswordHash: "passwordHash",
		Created:      "created",
	},
}

var Tables = struct {
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
	Note struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
	Note: struct {
		Name, Alias string
	}{
		Name:  "notes",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID       int       `pg:"commentId,pk"`
	NewsID   int       `pg:"newsId,use_zero"`
	AuthorID int       `pg:"authorId,use_zero"`
	Text     string    `pg:"text,use_zero"`
	Created  time.Time `pg:"created,use_zero"`

	Author *User `pg:"fk:authorId,rel:has-one"`
	News   *News `pg:"fk:newsId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID    int       `pg:"newsId,pk"`
	Title string    `pg:"title,use_zero"`
	Text  string    `pg:"text,use_zero"`
	Date  time.Time `pg:"date,use_zero"`
}

type Note struct {
	tableName struct{} `pg:"notes,alias:t,discard_unknown_columns"`

	ID       int    `pg:"noteId,pk"`
	Title    string `pg:"title,use_zero"`
	Text     string `pg:"text,use_zero"`
	Slug     string `pg:"slug,use_zero"`
	AuthorID int    `pg:"authorId,use_zero"`

	Author *User `pg:"fk:authorId,rel:has-one"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int       `pg:"userId,pk"`
	Username     string    `pg:"username,use_zero"`
	PasswordHash string    `pg:"passwordHash,use_zero"`
	Created      time.Time `pg:"created,use_zero"`
}
