package search

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/llehouerou/announcer/internal/catalogue"
	"github.com/llehouerou/announcer/internal/db"
)

const ftsSchema = `
	CREATE VIRTUAL TABLE clip_search_fts USING fts5(
		text,
		ref UNINDEXED,
		tokenize='trigram'
	);
`

// FTSIndex searches transcriptions through an in-memory SQLite FTS5 table
// using the trigram tokenizer.
type FTSIndex struct {
	db *sql.DB
}

// NewFTSIndex creates the FTS table and inserts every document.
func NewFTSIndex(docs []catalogue.Document) (Index, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open search database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(ftsSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create search table: %w", err)
	}

	err = db.WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO clip_search_fts (text, ref) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, d := range docs {
			if _, err := stmt.Exec(d.Text, d.Ref); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("populate search table: %w", err)
	}

	return &FTSIndex{db: conn}, nil
}

// Search matches every word as a case-insensitive substring, ranked by
// bm25. A blank query matches nothing.
func (idx *FTSIndex) Search(text string) ([]Result, error) {
	where, args := ftsWhere(text)
	if where == "" {
		return nil, nil
	}

	rows, err := idx.db.Query(`
		SELECT ref, rank
		FROM clip_search_fts
		WHERE `+where+`
		ORDER BY rank
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var rank sql.NullFloat64
		if err := rows.Scan(&r.Ref, &rank); err != nil {
			return nil, err
		}
		// bm25 rank is negative, lower is better. NULL without MATCH.
		r.Score = -rank.Float64
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close releases the database.
func (idx *FTSIndex) Close() error {
	return idx.db.Close()
}

// ftsWhere builds the WHERE clause for text. The trigram tokenizer cannot
// match terms shorter than three characters, so those fall back to LIKE.
func ftsWhere(text string) (string, []any) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", nil
	}

	var long []string
	var clauses []string
	var args []any
	for _, w := range words {
		if len([]rune(w)) >= 3 {
			long = append(long, w)
			continue
		}
		clauses = append(clauses, `text LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(w)+"%")
	}
	if len(long) > 0 {
		clauses = append([]string{`text MATCH ?`}, clauses...)
		args = append([]any{escapeFTSQuery(long)}, args...)
	}
	return strings.Join(clauses, " AND "), args
}

// escapeFTSQuery quotes each word for substring matching; FTS5 joins them
// with an implicit AND.
func escapeFTSQuery(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = `"` + strings.ReplaceAll(w, `"`, `""`) + `"`
	}
	return strings.Join(quoted, " ")
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
