package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	base := baseURL(t)
	_, token := registerLibrarian(t, "catalog")

	t.Run("add and get", func(t *testing.T) {
		isbn := uniqueISBN()
		resp := postJSON(t, base+"/books", map[string]interface{}{
			"title":  "Integration Testing in Go",
			"author": "Test Author",
			"year":   2024,
			"isbn":   isbn,
			"copies": 3,
		}, token)
		require.Equal(t, 0, resp.Code, "add failed: %s", resp.Message)

		var created bookData
		require.NoError(t, json.Unmarshal(resp.Data, &created))
		assert.NotZero(t, created.ID)
		assert.Equal(t, 3, created.Copies)

		resp = getJSON(t, fmt.Sprintf("%s/books/%d", base, created.ID), token)
		require.Equal(t, 0, resp.Code)

		var fetched bookData
		require.NoError(t, json.Unmarshal(resp.Data, &fetched))
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, isbn, fetched.ISBN)
	})

	t.Run("copies defaults to one", func(t *testing.T) {
		resp := postJSON(t, base+"/books", map[string]interface{}{
			"title":  "Default Copies",
			"author": "Test Author",
		}, token)
		require.Equal(t, 0, resp.Code, "add failed: %s", resp.Message)

		var created bookData
		require.NoError(t, json.Unmarshal(resp.Data, &created))
		assert.Equal(t, 1, created.Copies)
	})

	t.Run("duplicate isbn rejected", func(t *testing.T) {
		isbn := uniqueISBN()
		resp := postJSON(t, base+"/books", map[string]interface{}{
			"title": "First", "author": "A", "isbn": isbn,
		}, token)
		require.Equal(t, 0, resp.Code)

		resp = postJSON(t, base+"/books", map[string]interface{}{
			"title": "Second", "author": "B", "isbn": isbn,
		}, token)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("partial update", func(t *testing.T) {
		id := addBook(t, token, "Before Update", 2)

		resp := doJSON(t, "PATCH", fmt.Sprintf("%s/books/%d", base, id), map[string]interface{}{
			"title": "After Update",
		}, token)
		require.Equal(t, 0, resp.Code, "update failed: %s", resp.Message)

		var updated bookData
		require.NoError(t, json.Unmarshal(resp.Data, &updated))
		assert.Equal(t, "After Update", updated.Title)
		// Fields not in the request keep their stored values.
		assert.Equal(t, "Integration Author", updated.Author)
		assert.Equal(t, 2, updated.Copies)
	})

	t.Run("delete blocked while borrowed", func(t *testing.T) {
		bookID := addBook(t, token, "Borrowed Book", 1)
		readerID := addReader(t, token, "Deletion Blocker")

		resp := postJSON(t, base+"/borrow", map[string]uint{
			"book_id": bookID, "reader_id": readerID,
		}, token)
		require.Equal(t, 0, resp.Code, "borrow failed: %s", resp.Message)

		resp = doJSON(t, "DELETE", fmt.Sprintf("%s/books/%d", base, bookID), nil, token)
		assert.NotEqual(t, 0, resp.Code, "delete should be refused while borrowed")

		// After the return the delete goes through.
		resp = postJSON(t, base+"/borrow/return", map[string]uint{
			"book_id": bookID, "reader_id": readerID,
		}, token)
		require.Equal(t, 0, resp.Code)

		resp = doJSON(t, "DELETE", fmt.Sprintf("%s/books/%d", base, bookID), nil, token)
		assert.Equal(t, 0, resp.Code, "delete failed: %s", resp.Message)
	})
}
