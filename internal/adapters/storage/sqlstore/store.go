package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/storage"
	"github.com/jsamuelsen11/go-business-service/internal/domain"
)

var tableName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

type queries struct {
	all    string
	byID   string
	exists string
	insert string
	update string
	delete string
	maxKey string
}

// Store is a data proxy persisting one entity type in one table.
type Store[T domain.Object[T, int64]] struct {
	db    *DB
	table string
	opts  storage.Options[T, int64]
	q     queries
}

// New creates the table if needed and returns a Store for it. When opts has
// no key generator, keys continue from the largest stored key.
func New[T domain.Object[T, int64]](ctx context.Context, db *DB, table string, opts storage.Options[T, int64]) (*Store[T], error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	d := db.dialect
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id %s PRIMARY KEY,
		payload %s NOT NULL
	)`, table, d.keyType, d.blobType)
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("create %s table: %w", table, err)
	}

	s := &Store[T]{
		db:    db,
		table: table,
		opts:  opts,
		q: queries{
			all:    fmt.Sprintf(`SELECT payload FROM %s ORDER BY id`, table),
			byID:   fmt.Sprintf(`SELECT payload FROM %s WHERE id = %s`, table, d.bind(1)),
			exists: fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE id = %s`, table, d.bind(1)),
			insert: fmt.Sprintf(`INSERT INTO %s (id, payload) VALUES (%s, %s)`, table, d.bind(1), d.bind(2)),
			update: fmt.Sprintf(`UPDATE %s SET payload = %s WHERE id = %s`, table, d.bind(1), d.bind(2)),
			delete: fmt.Sprintf(`DELETE FROM %s WHERE id = %s`, table, d.bind(1)),
			maxKey: fmt.Sprintf(`SELECT COALESCE(MAX(id), 0) FROM %s`, table),
		},
	}

	if s.opts.NextKey == nil {
		var maxKey int64
		if err := db.QueryRowContext(ctx, s.q.maxKey).Scan(&maxKey); err != nil {
			return nil, fmt.Errorf("read %s max key: %w", table, err)
		}
		s.opts.NextKey = storage.Sequence(maxKey)
	}

	return s, nil
}

// GetAll returns every row ordered by key.
func (s *Store[T]) GetAll(ctx context.Context) (_ []T, retErr error) {
	rows, err := s.db.QueryContext(ctx, s.q.all)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", s.table, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && retErr == nil {
			retErr = cerr
		}
	}()

	var out []T
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}
		v, err := storage.Decode[T](payload)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.table, err)
	}
	return out, nil
}

// GetByID returns the row stored under id.
func (s *Store[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var zero T

	var payload []byte
	err := s.db.QueryRowContext(ctx, s.q.byID, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, storage.NotFound(s.opts.TypeName, id)
	}
	if err != nil {
		return zero, fmt.Errorf("select %s %d: %w", s.table, id, err)
	}
	return storage.Decode[T](payload)
}

// Insert stores a copy of entity, assigning a key when it has none. The
// duplicate-key check and the insert run in one transaction.
func (s *Store[T]) Insert(ctx context.Context, entity T) (_ T, retErr error) {
	var zero T

	row, err := storage.Clone(entity)
	if err != nil {
		return zero, err
	}
	if row.GetID() == 0 {
		row.SetID(s.opts.NextKey())
	}
	id := row.GetID()
	s.opts.Apply(row)

	payload, err := storage.Encode(row)
	if err != nil {
		return zero, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("begin insert %s: %w", s.table, err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	var n int
	if err := tx.QueryRowContext(ctx, s.q.exists, id).Scan(&n); err != nil {
		return zero, fmt.Errorf("check %s %d: %w", s.table, id, err)
	}
	if n > 0 {
		return zero, storage.AlreadyExists(s.opts.TypeName, id)
	}
	if _, err := tx.ExecContext(ctx, s.q.insert, id, payload); err != nil {
		return zero, fmt.Errorf("insert %s %d: %w", s.table, id, err)
	}
	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit insert %s: %w", s.table, err)
	}

	return storage.Decode[T](payload)
}

// Update replaces the row stored under the entity's key.
func (s *Store[T]) Update(ctx context.Context, entity T) (T, error) {
	var zero T

	row, err := storage.Clone(entity)
	if err != nil {
		return zero, err
	}
	id := row.GetID()
	s.opts.Apply(row)

	payload, err := storage.Encode(row)
	if err != nil {
		return zero, err
	}

	res, err := s.db.ExecContext(ctx, s.q.update, payload, id)
	if err != nil {
		return zero, fmt.Errorf("update %s %d: %w", s.table, id, err)
	}
	if err := requireRow(res, s.opts.TypeName, id); err != nil {
		return zero, err
	}

	return storage.Decode[T](payload)
}

// Delete removes the row stored under id.
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q.delete, id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", s.table, id, err)
	}
	return requireRow(res, s.opts.TypeName, id)
}

// SupportsTransactions reports true.
func (s *Store[T]) SupportsTransactions() bool { return true }

// IsLatencyProne reports false.
func (s *Store[T]) IsLatencyProne() bool { return false }

func requireRow(res sql.Result, typeName string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return storage.NotFound(typeName, id)
	}
	return nil
}
