package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.APIURL = srv.URL
	cfg.CoversURL = "https://covers.example.org/"
	return NewClient(cfg, quietLogger())
}

func docsJSON(n int) string {
	docs := make([]string, n)
	for i := range docs {
		docs[i] = fmt.Sprintf(`{"key":"/works/OL%dW","title":"Book %d","author_name":["Author %d","Other"],"first_publish_year":%d,"cover_i":%d}`,
			i, i, i, 1900+i, 1000+i)
	}
	return `{"numFound":` + fmt.Sprint(n) + `,"docs":[` + strings.Join(docs, ",") + `]}`
}

func TestSearchByTitle_EncodesQueryAndKeepsOrder(t *testing.T) {
	var gotTitle, gotPath, gotAgent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTitle = r.URL.Query().Get("title")
		gotAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, docsJSON(20))
	})

	books, err := client.SearchByTitle(context.Background(), "the lord & the rings?", 12)
	require.NoError(t, err)

	assert.Equal(t, "/search.json", gotPath)
	assert.Equal(t, "the lord & the rings?", gotTitle)
	assert.Equal(t, DefaultConfig().UserAgent, gotAgent)

	require.Len(t, books, 12)
	for i, b := range books {
		assert.Equal(t, fmt.Sprintf("Book %d", i), b.Title)
		assert.Equal(t, fmt.Sprintf("/works/OL%dW", i), b.Key)
	}
	assert.Equal(t, "Author 0", books[0].Author())
	assert.Equal(t, "1900", books[0].Year())
	require.NotNil(t, books[0].CoverID)
	assert.Equal(t, 1000, *books[0].CoverID)
}

func TestSearchByTitle_FewerThanLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, docsJSON(3))
	})

	books, err := client.SearchByTitle(context.Background(), "dune", 12)
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestSearchByTitle_EmptyDocs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"numFound":0,"docs":[]}`)
	})

	books, err := client.SearchByTitle(context.Background(), "zzzz", 12)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestSearchByTitle_OptionalFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"docs":[{"title":"Bare"}]}`)
	})

	books, err := client.SearchByTitle(context.Background(), "bare", 12)
	require.NoError(t, err)
	require.Len(t, books, 1)

	b := books[0]
	assert.Equal(t, "Bare", b.Title)
	assert.Empty(t, b.Authors)
	assert.Nil(t, b.FirstPublishYear)
	assert.Nil(t, b.CoverID)
	assert.Equal(t, "Unknown Author", b.Author())
	assert.Equal(t, "N/A", b.Year())
}

func TestSearchByTitle_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"docs": [`)
		}},
		{"wrong shape", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"docs": "nope"}`)
		}},
		{"empty object", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		}},
		{"null body", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `null`)
		}},
		{"error object", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"error": "solr is down"}`)
		}},
		{"null docs", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"docs": null}`)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, tc.handler)
			books, err := client.SearchByTitle(context.Background(), "x", 12)
			require.Error(t, err)
			assert.Nil(t, books)
		})
	}
}

func TestSearchByTitle_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := DefaultConfig()
	cfg.APIURL = url
	client := NewClient(cfg, quietLogger())

	_, err := client.SearchByTitle(context.Background(), "x", 12)
	require.Error(t, err)
}

func TestSearchByTitle_CancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, docsJSON(1))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.SearchByTitle(ctx, "x", 12)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBookCover(t *testing.T) {
	zero, id := 0, 8231856

	_, ok := Book{}.Cover()
	assert.False(t, ok)
	_, ok = Book{CoverID: &zero}.Cover()
	assert.False(t, ok)

	got, ok := Book{CoverID: &id}.Cover()
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestWork_DescriptionShapes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/works/OL1W.json":
			fmt.Fprint(w, `{"key":"/works/OL1W","title":"Plain","description":"Just text.","subjects":["A","B"]}`)
		case "/works/OL2W.json":
			fmt.Fprint(w, `{"key":"/works/OL2W","title":"Typed","description":{"type":"/type/text","value":"Typed text."}}`)
		case "/works/OL3W.json":
			fmt.Fprint(w, `{"key":"/works/OL3W","title":"None"}`)
		default:
			http.NotFound(w, r)
		}
	})

	work, err := client.Work(context.Background(), "/works/OL1W")
	require.NoError(t, err)
	assert.Equal(t, "Plain", work.Title)
	assert.Equal(t, "Just text.", work.Description)
	assert.Equal(t, []string{"A", "B"}, work.Subjects)

	work, err = client.Work(context.Background(), "/works/OL2W")
	require.NoError(t, err)
	assert.Equal(t, "Typed text.", work.Description)

	work, err = client.Work(context.Background(), "/works/OL3W")
	require.NoError(t, err)
	assert.Empty(t, work.Description)

	_, err = client.Work(context.Background(), "/works/OL404W")
	require.Error(t, err)
}

func TestWork_RejectsNonWorkKeys(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	_, err := client.Work(context.Background(), "/authors/OL1A")
	require.Error(t, err)
}

func TestCoverURL(t *testing.T) {
	client := newTestClient(t, http.NotFound)
	assert.Equal(t, "https://covers.example.org/b/id/8231856-M.jpg", client.CoverURL(8231856, "M"))
}
