package integration

import (
	"encoding/json"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowReturn(t *testing.T) {
	base := baseURL(t)
	_, token := registerLibrarian(t, "borrow")

	t.Run("borrow decrements copies", func(t *testing.T) {
		bookID := addBook(t, token, "Borrowable", 2)
		readerID := addReader(t, token, "Borrower")

		resp := postJSON(t, base+"/borrow", map[string]uint{
			"book_id": bookID, "reader_id": readerID,
		}, token)
		require.Equal(t, 0, resp.Code, "borrow failed: %s", resp.Message)

		var rec borrowData
		require.NoError(t, json.Unmarshal(resp.Data, &rec))
		assert.NotZero(t, rec.RecordID)

		resp = getJSON(t, base+"/books/"+itoa(bookID), token)
		require.Equal(t, 0, resp.Code)
		var b bookData
		require.NoError(t, json.Unmarshal(resp.Data, &b))
		assert.Equal(t, 1, b.Copies)
	})

	t.Run("no copies available", func(t *testing.T) {
		bookID := addBook(t, token, "Single Copy", 1)
		first := addReader(t, token, "First Reader")
		second := addReader(t, token, "Second Reader")

		resp := postJSON(t, base+"/borrow", map[string]uint{
			"book_id": bookID, "reader_id": first,
		}, token)
		require.Equal(t, 0, resp.Code)

		resp = postJSON(t, base+"/borrow", map[string]uint{
			"book_id": bookID, "reader_id": second,
		}, token)
		assert.NotEqual(t, 0, resp.Code)
		assert.Contains(t, resp.Message, "no available copies")
	})

	t.Run("borrow cap", func(t *testing.T) {
		readerID := addReader(t, token, "Avid Reader")
		var bookIDs []uint
		for i := 0; i < 4; i++ {
			bookIDs = append(bookIDs, addBook(t, token, "Cap Book", 1))
		}

		for i := 0; i < 3; i++ {
			resp := postJSON(t, base+"/borrow", map[string]uint{
				"book_id": bookIDs[i], "reader_id": readerID,
			}, token)
			require.Equal(t, 0, resp.Code, "borrow %d failed: %s", i, resp.Message)
		}

		resp := postJSON(t, base+"/borrow", map[string]uint{
			"book_id": bookIDs[3], "reader_id": readerID,
		}, token)
		assert.NotEqual(t, 0, resp.Code)
		assert.Contains(t, resp.Message, "3 borrowed books")
	})

	t.Run("return without borrow", func(t *testing.T) {
		bookID := addBook(t, token, "Never Borrowed", 1)
		readerID := addReader(t, token, "Non Borrower")

		resp := postJSON(t, base+"/borrow/return", map[string]uint{
			"book_id": bookID, "reader_id": readerID,
		}, token)
		assert.NotEqual(t, 0, resp.Code)
		assert.Contains(t, resp.Message, "no active borrow record")
	})

	t.Run("concurrent borrows of last copy", func(t *testing.T) {
		bookID := addBook(t, token, "Contested Copy", 1)

		const n = 5
		readerIDs := make([]uint, n)
		for i := range readerIDs {
			readerIDs[i] = addReader(t, token, "Contender")
		}

		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				resp := postJSON(t, base+"/borrow", map[string]uint{
					"book_id": bookID, "reader_id": readerIDs[i],
				}, token)
				codes[i] = resp.Code
			}(i)
		}
		wg.Wait()

		var successes int
		for _, code := range codes {
			if code == 0 {
				successes++
			}
		}
		assert.Equal(t, 1, successes, "exactly one borrow must win the last copy")

		resp := getJSON(t, base+"/books/"+itoa(bookID), token)
		require.Equal(t, 0, resp.Code)
		var b bookData
		require.NoError(t, json.Unmarshal(resp.Data, &b))
		assert.Equal(t, 0, b.Copies)
	})

	t.Run("ledger keeps history", func(t *testing.T) {
		bookID := addBook(t, token, "History Book", 1)
		readerID := addReader(t, token, "Historian")

		resp := postJSON(t, base+"/borrow", map[string]uint{
			"book_id": bookID, "reader_id": readerID,
		}, token)
		require.Equal(t, 0, resp.Code)
		var rec borrowData
		require.NoError(t, json.Unmarshal(resp.Data, &rec))

		resp = postJSON(t, base+"/borrow/return", map[string]uint{
			"book_id": bookID, "reader_id": readerID,
		}, token)
		require.Equal(t, 0, resp.Code)

		resp = getJSON(t, base+"/borrow", token)
		require.Equal(t, 0, resp.Code)

		var list struct {
			Records []struct {
				RecordID uint   `json:"record_id"`
				Title    string `json:"title"`
				Returned bool   `json:"returned"`
			} `json:"records"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &list))

		found := false
		for _, r := range list.Records {
			if r.RecordID == rec.RecordID {
				found = true
				assert.True(t, r.Returned)
				assert.Equal(t, "History Book", r.Title)
			}
		}
		assert.True(t, found, "returned record must stay in the ledger")
	})
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
