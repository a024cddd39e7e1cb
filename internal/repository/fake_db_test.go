package repository

import (
	"context"
	"database/sql"
	"fmt"

	"skill-matrix/internal/database"

	"github.com/google/uuid"
)

// Scripted stand-ins for database.DB, in the spirit of the pgx pool
// adapter: each Query/QueryRow/Exec pops the next scripted result and
// records the statement it served.

type dbCall struct {
	query string
	args  []any
}

type scriptedRow struct {
	vals []any
	err  error
}

func (r scriptedRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignScan(dest, r.vals)
}

type scriptedRows struct {
	data [][]any
	i    int
}

func (r *scriptedRows) Close()     {}
func (r *scriptedRows) Err() error { return nil }

func (r *scriptedRows) Next() bool {
	if r.i < len(r.data) {
		r.i++
		return true
	}
	return false
}

func (r *scriptedRows) Scan(dest ...any) error {
	return assignScan(dest, r.data[r.i-1])
}

func assignScan(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan dest mismatch: want %d, got %d", len(vals), len(dest))
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *uuid.UUID:
			v, ok := vals[i].(uuid.UUID)
			if !ok {
				return fmt.Errorf("scan type mismatch at %d: want uuid", i)
			}
			*d = v
		case *string:
			v, ok := vals[i].(string)
			if !ok {
				return fmt.Errorf("scan type mismatch at %d: want string", i)
			}
			*d = v
		case *int:
			v, ok := vals[i].(int)
			if !ok {
				return fmt.Errorf("scan type mismatch at %d: want int", i)
			}
			*d = v
		default:
			return fmt.Errorf("unsupported scan dest at %d: %T", i, dest[i])
		}
	}
	return nil
}

type fakeDB struct {
	rowsQueue []*scriptedRows
	rowQueue  []scriptedRow
	affected  []int64

	queryErr error
	execErr  error

	calls []dbCall
	tx    *fakeTx
}

func (f *fakeDB) Ping(ctx context.Context) error { return nil }
func (f *fakeDB) Close() error                   { return nil }
func (f *fakeDB) SQLDB() *sql.DB                 { return nil }

func (f *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	f.calls = append(f.calls, dbCall{query: query, args: args})
	if f.execErr != nil {
		return 0, f.execErr
	}
	if len(f.affected) == 0 {
		return 1, nil
	}
	n := f.affected[0]
	f.affected = f.affected[1:]
	return n, nil
}

func (f *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	f.calls = append(f.calls, dbCall{query: query, args: args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if len(f.rowsQueue) == 0 {
		return &scriptedRows{}, nil
	}
	r := f.rowsQueue[0]
	f.rowsQueue = f.rowsQueue[1:]
	return r, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	f.calls = append(f.calls, dbCall{query: query, args: args})
	if len(f.rowQueue) == 0 {
		return scriptedRow{err: fmt.Errorf("no scripted row")}
	}
	r := f.rowQueue[0]
	f.rowQueue = f.rowQueue[1:]
	return r
}

func (f *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	if f.tx == nil {
		f.tx = &fakeTx{}
	}
	return f.tx, nil
}

type fakeTx struct {
	rowQueue []scriptedRow
	execErr  error

	calls     []dbCall
	commits   int
	rollbacks int
}

func (t *fakeTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	t.calls = append(t.calls, dbCall{query: query, args: args})
	if t.execErr != nil {
		return 0, t.execErr
	}
	return 1, nil
}

func (t *fakeTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	t.calls = append(t.calls, dbCall{query: query, args: args})
	return &scriptedRows{}, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	t.calls = append(t.calls, dbCall{query: query, args: args})
	if len(t.rowQueue) == 0 {
		return scriptedRow{err: fmt.Errorf("no scripted row")}
	}
	r := t.rowQueue[0]
	t.rowQueue = t.rowQueue[1:]
	return r
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.commits++
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}
