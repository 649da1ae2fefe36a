package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// MESSAGE TYPES FOR ASYNC OPERATIONS
// ============================================================================
// Every request is tagged with the sequence number it was issued under.
// Messages from a request that has since been superseded are dropped.

// searchResultsMsg is sent when a title search settled successfully
type searchResultsMsg struct {
	seq   int
	query string
	books []Book
}

// searchErrorMsg is sent when a title search failed
type searchErrorMsg struct {
	seq   int
	query string
	err   error
}

// workLoadedMsg carries the work record for the details view
type workLoadedMsg struct {
	seq  int
	work WorkDetails
}

// workErrorMsg is sent when the work record could not be loaded
type workErrorMsg struct {
	seq int
	err error
}

// bookSearcher is the part of the Open Library client the UI depends on
type bookSearcher interface {
	SearchByTitle(ctx context.Context, query string, limit int) ([]Book, error)
	Work(ctx context.Context, key string) (WorkDetails, error)
	CoverURL(id int, size string) string
}

// searchBooks runs a title search in the background
func searchBooks(ctx context.Context, client bookSearcher, seq int, query string, limit int) tea.Cmd {
	return func() tea.Msg {
		books, err := client.SearchByTitle(ctx, query, limit)
		if err != nil {
			return searchErrorMsg{seq: seq, query: query, err: err}
		}
		return searchResultsMsg{seq: seq, query: query, books: books}
	}
}

// fetchWork loads the work record behind a card in the background
func fetchWork(ctx context.Context, client bookSearcher, seq int, key string) tea.Cmd {
	return func() tea.Msg {
		work, err := client.Work(ctx, key)
		if err != nil {
			return workErrorMsg{seq: seq, err: err}
		}
		return workLoadedMsg{seq: seq, work: work}
	}
}
