package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/go-michi/michi"
	"github.com/mscno/gist/pkg/githubauth"
	"github.com/mscno/gist/pkg/oskeyring"
)

func newTestCtx(t *testing.T, mux *michi.Router) *cliCtx {
	t.Helper()
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return &cliCtx{
		Context: context.Background(),
		Logger:  slog.Default(),
		Keyring: oskeyring.NewMemoryService(),
		Token:   "testtoken",
		APIURL:  ts.URL + "/gists",
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestCreateCmd(t *testing.T) {
	var gotBody []byte
	mux := michi.NewRouter()
	mux.Handle("/gists", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": "abc123", "html_url": "https://gist.github.com/abc123"}`)
	}))
	ctx := newTestCtx(t, mux)

	cmd := &CreateCmd{
		Files:       []string{writeTempFile(t, "hello.txt", "hello world")},
		Description: "greeting",
		Public:      true,
	}
	out, errString := captureOutput(func() error {
		return cmd.Run(ctx)
	})

	assert.Equal(t, errString, "")
	assert.Contains(t, out, "https://gist.github.com/abc123")
	assert.Contains(t, string(gotBody), `"hello.txt"`)
	assert.Contains(t, string(gotBody), `"public":true`)
}

func TestGetCmdSummary(t *testing.T) {
	mux := michi.NewRouter()
	mux.Handle("/gists/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": "abc123",
			"html_url": "https://gist.github.com/abc123",
			"description": "greeting",
			"public": true,
			"owner": {"login": "alice"},
			"created_at": "2023-05-01T10:00:00Z",
			"updated_at": "2023-05-01T10:00:00Z",
			"files": {"hello.txt": {"filename": "hello.txt", "language": "Text", "size": 11, "content": "hello world"}}
		}`)
	}))
	ctx := newTestCtx(t, mux)

	cmd := &GetCmd{Gist: "abc123"}
	out, errString := captureOutput(func() error {
		return cmd.Run(ctx)
	})

	assert.Equal(t, errString, "")
	assert.Contains(t, out, "Gist abc123")
	assert.Contains(t, out, "Owner: alice")
	assert.Contains(t, out, "hello.txt (Text) 11 bytes")
}

func TestGetCmdContent(t *testing.T) {
	mux := michi.NewRouter()
	mux.Handle("/gists/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "abc123", "files": {"hello.txt": {"filename": "hello.txt", "content": "hello world"}}}`)
	}))
	ctx := newTestCtx(t, mux)

	cmd := &GetCmd{Gist: "abc123", Content: "hello.txt"}
	out, errString := captureOutput(func() error {
		return cmd.Run(ctx)
	})

	assert.Equal(t, errString, "")
	assert.Equal(t, out, "hello world")

	cmd = &GetCmd{Gist: "abc123", Content: "missing.txt"}
	_, errString = captureOutput(func() error {
		return cmd.Run(ctx)
	})
	assert.Contains(t, errString, "no file named")
}

func TestDeleteCmd(t *testing.T) {
	mux := michi.NewRouter()
	mux.Handle("/gists/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, http.MethodDelete)
		w.WriteHeader(http.StatusNoContent)
	}))
	ctx := newTestCtx(t, mux)

	cmd := &DeleteCmd{Gist: "abc123"}
	out, errString := captureOutput(func() error {
		return cmd.Run(ctx)
	})

	assert.Equal(t, errString, "")
	assert.Equal(t, out, "Deleted.\n")
}

func TestStarCmdNotFound(t *testing.T) {
	mux := michi.NewRouter()
	mux.Handle("/gists/{id}/star", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	}))
	ctx := newTestCtx(t, mux)

	cmd := &StarCmd{Gist: "nope"}
	_, errString := captureOutput(func() error {
		return cmd.Run(ctx)
	})
	assert.Contains(t, errString, "failed to star gist")
	assert.Contains(t, errString, "404")
}

func TestListCommentsCmd(t *testing.T) {
	mux := michi.NewRouter()
	mux.Handle("/gists/{id}/comments", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"id": 1, "body": "first post", "user": {"login": "alice"}, "created_at": "2023-05-01T10:00:00Z", "updated_at": "2023-05-01T10:00:00Z"}
		]`)
	}))
	ctx := newTestCtx(t, mux)

	cmd := &ListCommentsCmd{Gist: "abc123", PerPage: 30, Page: 1}
	out, errString := captureOutput(func() error {
		return cmd.Run(ctx)
	})

	assert.Equal(t, errString, "")
	assert.Contains(t, out, "#1 alice")
	assert.Contains(t, out, "first post")
}

func TestResolveTokenFromKeyring(t *testing.T) {
	keyring := oskeyring.NewMemoryService()
	keyring.Set(githubauth.ServiceName, githubauth.GithubToken, "ghp_fromkeyring")
	ctx := &cliCtx{Context: context.Background(), Logger: slog.Default(), Keyring: keyring}

	token, err := resolveToken(ctx)
	assert.NoError(t, err)
	assert.Equal(t, token, "ghp_fromkeyring")
}

func TestResolveTokenFlagWins(t *testing.T) {
	keyring := oskeyring.NewMemoryService()
	keyring.Set(githubauth.ServiceName, githubauth.GithubToken, "ghp_fromkeyring")
	ctx := &cliCtx{Context: context.Background(), Logger: slog.Default(), Keyring: keyring, Token: "ghp_flag"}

	token, err := resolveToken(ctx)
	assert.NoError(t, err)
	assert.Equal(t, token, "ghp_flag")
}

func TestResolveTokenMissing(t *testing.T) {
	ctx := &cliCtx{Context: context.Background(), Logger: slog.Default(), Keyring: oskeyring.NewMemoryService()}

	_, err := resolveToken(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gist auth login")
}

func TestAuthWhoamiCmd(t *testing.T) {
	keyring := oskeyring.NewMemoryService()
	keyring.Set(githubauth.ServiceName, githubauth.GithubLogin, "alice")
	ctx := &cliCtx{Context: context.Background(), Logger: slog.Default(), Keyring: keyring}

	cmd := &AuthWhoamiCmd{}
	out, errString := captureOutput(func() error {
		return cmd.Run(ctx)
	})
	assert.Equal(t, errString, "")
	assert.Equal(t, strings.TrimSpace(out), "alice")
}

// Helper function to capture CLI output
func captureOutput(f func() error) (string, string) {
	oldOut := os.Stdout
	oldErr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	os.Stdout = wOut
	os.Stderr = wErr

	err := f()

	wOut.Close()
	wErr.Close()

	var outBuf, errBuf bytes.Buffer
	io.Copy(&outBuf, rOut)
	io.Copy(&errBuf, rErr)

	os.Stdout = oldOut
	os.Stderr = oldErr

	if err != nil {
		return outBuf.String(), err.Error()
	}
	return outBuf.String(), errBuf.String()
}
