package server

import (
	"fmt"
	"net/http"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListPosts(t *testing.T) {
	s, app, db := setupAPITestServer(t)
	author, auth := createAuthedUser(t, s, db, "Ada", "ada@example.com")

	t.Run("create stamps author snapshot", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{"text": "hello"}, auth)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		post := decodeBody[models.Post](t, resp)
		assert.Equal(t, author.ID, post.UserID)
		assert.Equal(t, "Ada", post.Name)
		assert.Equal(t, "hello", post.Text)
	})

	t.Run("blank text rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{"text": ""}, auth)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unauthenticated create rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{"text": "nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("list is public and newest first", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{"text": "second"}, auth)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, "/api/posts", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		posts := decodeBody[[]models.Post](t, resp)
		require.Len(t, posts, 2)
		assert.Equal(t, "second", posts[0].Text)
		assert.Equal(t, "hello", posts[1].Text)
	})

	t.Run("missing post is 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/posts/99999", nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("bad post id is 400", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/posts/abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeletePostOwnership(t *testing.T) {
	s, app, db := setupAPITestServer(t)
	_, authorAuth := createAuthedUser(t, s, db, "Ada", "ada@example.com")
	_, strangerAuth := createAuthedUser(t, s, db, "Eve", "eve@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{"text": "mine"}, authorAuth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decodeBody[models.Post](t, resp)

	t.Run("non-author rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), nil, strangerAuth)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("author deletes", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), nil, authorAuth)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestLikeUnlike(t *testing.T) {
	s, app, db := setupAPITestServer(t)
	_, authorAuth := createAuthedUser(t, s, db, "Ada", "ada@example.com")
	reader, readerAuth := createAuthedUser(t, s, db, "Bob", "bob@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{"text": "likeable"}, authorAuth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decodeBody[models.Post](t, resp)

	likePath := fmt.Sprintf("/api/posts/%d/like", post.ID)
	unlikePath := fmt.Sprintf("/api/posts/%d/unlike", post.ID)

	t.Run("first like succeeds", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, likePath, nil, readerAuth)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		likes := decodeBody[[]models.Like](t, resp)
		require.Len(t, likes, 1)
		assert.Equal(t, reader.ID, likes[0].UserID)
	})

	t.Run("second like rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, likePath, nil, readerAuth)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unlike succeeds", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, unlikePath, nil, readerAuth)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		likes := decodeBody[[]models.Like](t, resp)
		assert.Empty(t, likes)
	})

	t.Run("unlike without like rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, unlikePath, nil, readerAuth)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("like on missing post is 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/posts/99999/like", nil, readerAuth)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestComments(t *testing.T) {
	s, app, db := setupAPITestServer(t)
	_, authorAuth := createAuthedUser(t, s, db, "Ada", "ada@example.com")
	commenter, commenterAuth := createAuthedUser(t, s, db, "Bob", "bob@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{"text": "discussable"}, authorAuth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decodeBody[models.Post](t, resp)

	commentsPath := fmt.Sprintf("/api/posts/%d/comments", post.ID)

	var commentID uint
	t.Run("comment added with snapshot, newest first", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, commentsPath, map[string]string{"text": "first!"}, commenterAuth)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = doJSON(t, app, http.MethodPost, commentsPath, map[string]string{"text": "second!"}, commenterAuth)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		comments := decodeBody[[]models.Comment](t, resp)
		require.Len(t, comments, 2)
		assert.Equal(t, "second!", comments[0].Text)
		assert.Equal(t, "first!", comments[1].Text)
		assert.Equal(t, "Bob", comments[0].Name)
		assert.Equal(t, commenter.ID, comments[0].UserID)
		commentID = comments[0].ID
	})

	t.Run("blank comment rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, commentsPath, map[string]string{"text": " "}, commenterAuth)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("non-author cannot delete comment", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete,
			fmt.Sprintf("%s/%d", commentsPath, commentID), nil, authorAuth)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("author deletes comment", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete,
			fmt.Sprintf("%s/%d", commentsPath, commentID), nil, commenterAuth)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		comments := decodeBody[[]models.Comment](t, resp)
		require.Len(t, comments, 1)
		assert.Equal(t, "first!", comments[0].Text)
	})

	t.Run("deleting missing comment is 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete,
			fmt.Sprintf("%s/99999", commentsPath), nil, commenterAuth)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
