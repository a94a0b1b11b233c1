package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
)

func TestBookTags_Success(t *testing.T) {
	ts := setupTestServer(t)
	ts.tags.bookTags[100] = []domain.Tag{
		{TagID: 1, TagName: "fiction"},
		{TagID: 2, TagName: "classics"},
	}

	resp := ts.get("/books/100/tags")

	assert.Equal(t, http.StatusOK, resp.Code)

	var got TagListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))

	assert.Equal(t, 2, got.Total)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "fiction", got.Items[0].TagName)
}

func TestBookTags_UnknownBookIsEmpty(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.get("/books/999/tags")

	assert.Equal(t, http.StatusOK, resp.Code)

	var got TagListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Zero(t, got.Total)
	assert.Empty(t, got.Items)
}

func TestBookTags_NonNumericID(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.get("/books/abc/tags")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListTags_Success(t *testing.T) {
	ts := setupTestServer(t)
	ts.tags.tags = []domain.TagWithCount{
		{Tag: domain.Tag{TagID: 1, TagName: "fiction"}, BookCount: 12},
		{Tag: domain.Tag{TagID: 2, TagName: "classics"}, BookCount: 7},
		{Tag: domain.Tag{TagID: 3, TagName: "history"}, BookCount: 3},
	}

	resp := ts.get("/tags?page=1&page_size=2")

	assert.Equal(t, http.StatusOK, resp.Code)

	var page struct {
		Items    []domain.TagWithCount `json:"items"`
		Page     int                   `json:"page"`
		PageSize int                   `json:"page_size"`
		Total    int64                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))

	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(12), page.Items[0].BookCount)
}

func TestUserToRead_Success(t *testing.T) {
	ts := setupTestServer(t)
	ts.toRead.entries[7] = []domain.ToRead{
		{UserID: 7, BookID: 1},
		{UserID: 7, BookID: 2},
	}

	resp := ts.get("/users/7/to-read")

	assert.Equal(t, http.StatusOK, resp.Code)

	var page struct {
		Items []domain.ToRead `json:"items"`
		Total int64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Items, 2)
}

func TestUserToRead_NonNumericID(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.get("/users/someone/to-read")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
