// Package integration exercises a running API instance end to end.
//
// The tests are skipped unless LIBRA_API_URL points at a live server, e.g.
//
//	LIBRA_API_URL=http://localhost:8080 go test ./test/integration/...
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const timeout = 10 * time.Second

// baseURL returns the API root or skips the test when no server is available.
func baseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("LIBRA_API_URL")
	if url == "" {
		t.Skip("LIBRA_API_URL not set, skipping integration test")
	}
	return url + "/api/v1"
}

// Response is the unified envelope every endpoint returns.
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type loginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type bookData struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	ISBN   string `json:"isbn"`
	Copies int    `json:"copies"`
}

type readerData struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type borrowData struct {
	RecordID   uint   `json:"record_id"`
	BookID     uint   `json:"book_id"`
	ReaderID   uint   `json:"reader_id"`
	BorrowDate string `json:"borrow_date"`
	ReturnDate string `json:"return_date"`
}

func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		require.NoError(t, err)
		body = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result Response
	require.NoError(t, json.Unmarshal(raw, &result), "bad response body: %s", string(raw))
	return &result
}

func postJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

func getJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.local", prefix, time.Now().UnixNano())
}

func uniqueISBN() string {
	return fmt.Sprintf("978%010d", time.Now().UnixNano()%10000000000)
}

// registerLibrarian registers a fresh librarian account, logs in and returns
// the access token.
func registerLibrarian(t *testing.T, prefix string) (email, token string) {
	t.Helper()
	base := baseURL(t)

	email = uniqueEmail(prefix)
	resp := postJSON(t, base+"/librarians/register", map[string]string{
		"email":    email,
		"password": "integr8pass",
	}, "")
	require.Equal(t, 0, resp.Code, "register failed: %s", resp.Message)

	resp = postJSON(t, base+"/librarians/login", map[string]string{
		"email":    email,
		"password": "integr8pass",
	}, "")
	require.Equal(t, 0, resp.Code, "login failed: %s", resp.Message)

	var data loginData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return email, data.AccessToken
}

// addBook creates a catalog entry and returns its id.
func addBook(t *testing.T, token, title string, copies int) uint {
	t.Helper()

	resp := postJSON(t, baseURL(t)+"/books", map[string]interface{}{
		"title":  title,
		"author": "Integration Author",
		"isbn":   uniqueISBN(),
		"copies": copies,
	}, token)
	require.Equal(t, 0, resp.Code, "add book failed: %s", resp.Message)

	var data bookData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.ID
}

// addReader registers a roster entry and returns its id.
func addReader(t *testing.T, token, name string) uint {
	t.Helper()

	resp := postJSON(t, baseURL(t)+"/readers", map[string]string{
		"name":  name,
		"email": uniqueEmail("reader"),
	}, token)
	require.Equal(t, 0, resp.Code, "add reader failed: %s", resp.Message)

	var data readerData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.ID
}
