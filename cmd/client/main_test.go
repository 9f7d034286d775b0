package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService answers the JSON lookup of contact a1 and counts the form submissions.
func fakeService(t *testing.T) (*httptest.Server, *[]string) {
	var posts []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/contacts/a1":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"contact": {"id": "a1", "first": "Ada", "last": "Lovelace", "twitter": "ada", "favorite": true}}`))
		case r.Method == http.MethodPost:
			r.ParseForm()
			posts = append(posts, r.URL.Path+"?"+r.PostForm.Encode())
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server, &posts
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	server, _ := fakeService(t)
	out, err := run(t, "", "--server", server.URL, "show", "a1")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace ★")
	assert.Contains(t, out, "twitter: https://twitter.com/ada")
	assert.NotContains(t, out, "notes:")
}

func TestShowUnknownContact(t *testing.T) {
	server, _ := fakeService(t)
	_, err := run(t, "", "--server", server.URL, "show", "missing")
	assert.ErrorContains(t, err, "not found")
}

func TestFavorite(t *testing.T) {
	server, posts := fakeService(t)
	_, err := run(t, "", "--server", server.URL, "favorite", "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"/contacts/a1?favorite=false"}, *posts)
}

func TestDeleteDeclined(t *testing.T) {
	server, posts := fakeService(t)
	out, err := run(t, "n\n", "--server", server.URL, "delete", "a1")
	require.NoError(t, err)
	assert.Contains(t, out, "Please confirm you want to delete this record. [y/N]")
	assert.Contains(t, out, "cancelled")
	assert.Empty(t, *posts)
}

func TestDeleteConfirmed(t *testing.T) {
	server, posts := fakeService(t)
	out, err := run(t, "yes\n", "--server", server.URL, "delete", "a1")
	require.NoError(t, err)
	assert.Contains(t, out, "contact deleted")
	assert.Equal(t, []string{"/contacts/a1/destroy?"}, *posts)
}

func TestDeleteWithoutPrompt(t *testing.T) {
	server, posts := fakeService(t)
	out, err := run(t, "", "--server", server.URL, "delete", "--yes", "a1")
	require.NoError(t, err)
	assert.NotContains(t, out, "[y/N]")
	assert.Len(t, *posts, 1)
}
