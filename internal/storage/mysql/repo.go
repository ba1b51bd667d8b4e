package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"villa_site/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ReplaceDocuments swaps the stored set of kind for docs in one transaction,
// so documents deleted in the CMS disappear from the mirror too.
func (r *Repo) ReplaceDocuments(ctx context.Context, kind string, docs []domain.Document) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteKindSQL, kind); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	if len(docs) > 0 {
		values := make([]string, 0, len(docs))
		args := make([]any, 0, len(docs)*4)
		for _, d := range docs {
			values = append(values, "(?,?,?,?)")
			args = append(args, kind, d.ID, d.Position, string(d.Body))
		}
		q := insertDocsPrefix + strings.Join(values, ",") + insertDocsOnDup
		if _, err = tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert %s: %w", kind, err)
		}
	}
	return tx.Commit()
}

func (r *Repo) Documents(ctx context.Context, kind string) ([]domain.Document, error) {
	rows, err := r.db.QueryContext(ctx, listDocsSQL, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Document
	for rows.Next() {
		var d domain.Document
		var body []byte
		if err := rows.Scan(&d.ID, &d.Position, &body); err != nil {
			return nil, err
		}
		d.Body = append([]byte(nil), body...)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) LogSync(ctx context.Context, kind string, count int, syncErr error) error {
	var msg any
	if syncErr != nil {
		msg = syncErr.Error()
	}
	_, err := r.db.ExecContext(ctx, insertSyncLogSQL, kind, count, msg)
	return err
}
