package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// File is a single file within a gist. Filename and Content are required
// when building a file for submission; everything else is populated by the
// API on decode. Pointer fields distinguish "not part of this response" from
// an empty value.
type File struct {
	Filename string  `json:"filename"`
	Content  *string `json:"content"`
	Type     *string `json:"type"`
	Language *string `json:"language"`
	RawURL   *string `json:"raw_url"`
	Size     *int64  `json:"size"`
}

// NewFile builds a file for submission with create or update calls.
func NewFile(filename, content string) File {
	return File{Filename: filename, Content: &content}
}

// User is a read-only snapshot of a GitHub account as embedded in gist and
// comment payloads. The API does not guarantee any particular field, so all
// of them are optional.
type User struct {
	Login             *string `json:"login"`
	ID                *int64  `json:"id"`
	NodeID            *string `json:"node_id"`
	AvatarURL         *string `json:"avatar_url"`
	GravatarID        *string `json:"gravatar_id"`
	URL               *string `json:"url"`
	HTMLURL           *string `json:"html_url"`
	FollowersURL      *string `json:"followers_url"`
	FollowingURL      *string `json:"following_url"`
	GistsURL          *string `json:"gists_url"`
	StarredURL        *string `json:"starred_url"`
	SubscriptionsURL  *string `json:"subscriptions_url"`
	OrganizationsURL  *string `json:"organizations_url"`
	ReposURL          *string `json:"repos_url"`
	EventsURL         *string `json:"events_url"`
	ReceivedEventsURL *string `json:"received_events_url"`
	Type              *string `json:"type"`
	SiteAdmin         *bool   `json:"site_admin"`
}

// Gist is a decoded gist. Files keep the order the API returned them in;
// FileNamed covers lookup by name. The embedded client handle makes the
// convenience methods below delegate to the client that fetched the gist.
type Gist struct {
	ID           string    `json:"id"`
	NodeID       string    `json:"node_id"`
	URL          string    `json:"url"`
	ForksURL     string    `json:"forks_url"`
	CommitsURL   string    `json:"commits_url"`
	CommentsURL  string    `json:"comments_url"`
	HTMLURL      string    `json:"html_url"`
	GitPullURL   string    `json:"git_pull_url"`
	GitPushURL   string    `json:"git_push_url"`
	Public       bool      `json:"public"`
	Truncated    bool      `json:"truncated"`
	Description  string    `json:"description"`
	CommentCount int       `json:"comments"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Owner        *User     `json:"owner"`
	User         *User     `json:"user"`
	Files        []File    `json:"-"`

	client *Client
}

// UnmarshalJSON decodes a gist payload, preserving the insertion order of
// the "files" object. encoding/json would hand the files to a map and lose
// the order the API returned them in.
func (g *Gist) UnmarshalJSON(data []byte) error {
	type alias Gist
	aux := struct {
		*alias
		Files json.RawMessage `json:"files"`
	}{alias: (*alias)(g)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	files, err := decodeFiles(aux.Files)
	if err != nil {
		return err
	}
	g.Files = files
	return nil
}

// decodeFiles walks the "files" JSON object token by token so the resulting
// slice matches the object's key order. Each value is a file object; the key
// is authoritative for the filename when the value omits it.
func decodeFiles(data []byte) ([]File, error) {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("files field is not a JSON object")
	}
	var files []File
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("files field has a non-string key")
		}
		var f File
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode file %q: %w", name, err)
		}
		if f.Filename == "" {
			f.Filename = name
		}
		files = append(files, f)
	}
	return files, nil
}

// FileNamed returns the file with the given name, if present.
func (g *Gist) FileNamed(name string) (File, bool) {
	for _, f := range g.Files {
		if f.Filename == name {
			return f, true
		}
	}
	return File{}, false
}

// Update edits this gist's description and files.
func (g *Gist) Update(ctx context.Context, description string, files ...File) (*Gist, error) {
	return g.client.Update(ctx, g.ID, description, files...)
}

// Delete removes this gist.
func (g *Gist) Delete(ctx context.Context) error {
	return g.client.Delete(ctx, g.ID)
}

// Star stars this gist for the authenticated user.
func (g *Gist) Star(ctx context.Context) error {
	return g.client.Star(ctx, g.ID)
}

// Unstar removes the authenticated user's star from this gist.
func (g *Gist) Unstar(ctx context.Context) error {
	return g.client.Unstar(ctx, g.ID)
}

// Fork forks this gist into the authenticated user's account.
func (g *Gist) Fork(ctx context.Context) (*Gist, error) {
	return g.client.Fork(ctx, g.ID)
}

// Comment posts a comment on this gist.
func (g *Gist) Comment(ctx context.Context, body string) (*Comment, error) {
	return g.client.CreateComment(ctx, g.ID, body)
}

// FetchComments lists comments on this gist. perPage defaults to 30 (max
// 100) and page to 1 when zero.
func (g *Gist) FetchComments(ctx context.Context, perPage, page int) ([]*Comment, error) {
	return g.client.Comments(ctx, g.ID, perPage, page)
}

// Comment is a decoded gist comment. GistID records which gist the comment
// was read from, so Update and Delete can address it without the caller
// tracking both ids.
type Comment struct {
	ID                int64     `json:"id"`
	NodeID            string    `json:"node_id"`
	URL               string    `json:"url"`
	GistID            string    `json:"gist_id"`
	Body              string    `json:"body"`
	AuthorAssociation string    `json:"author_association"`
	User              *User     `json:"user"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	client *Client
}

// Update edits this comment's body.
func (c *Comment) Update(ctx context.Context, body string) (*Comment, error) {
	return c.client.UpdateComment(ctx, c.GistID, c.ID, body)
}

// Delete removes this comment.
func (c *Comment) Delete(ctx context.Context) error {
	return c.client.DeleteComment(ctx, c.GistID, c.ID)
}

func decodeGist(c *Client, raw json.RawMessage) (*Gist, error) {
	if len(raw) == 0 {
		return nil, &DecodeError{Entity: "gist", Reason: "empty response body"}
	}
	var g Gist
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("failed to decode gist: %w", err)
	}
	if g.ID == "" {
		return nil, &DecodeError{Entity: "gist", Reason: "missing id"}
	}
	g.client = c
	return &g, nil
}

func decodeComment(c *Client, gistID string, raw json.RawMessage) (*Comment, error) {
	if len(raw) == 0 {
		return nil, &DecodeError{Entity: "comment", Reason: "empty response body"}
	}
	var cm Comment
	if err := json.Unmarshal(raw, &cm); err != nil {
		return nil, fmt.Errorf("failed to decode comment: %w", err)
	}
	if cm.ID == 0 {
		return nil, &DecodeError{Entity: "comment", Reason: "missing id"}
	}
	if cm.GistID == "" {
		cm.GistID = gistID
	}
	cm.client = c
	return &cm, nil
}
