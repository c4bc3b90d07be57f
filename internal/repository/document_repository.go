package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"isbuldum/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidCollection = errors.New("invalid collection")
)

// DocumentRepository stores JSON records under collection paths, the way the
// site's realtime database does: Create assigns the id, records are read
// back whole.
type DocumentRepository interface {
	Create(ctx context.Context, collection string, record any) (string, error)
	Get(ctx context.Context, collection, id string, out any) error
	List(ctx context.Context, collection string, limit, offset int) ([]json.RawMessage, error)
}

func normalizeCollection(c string) (string, error) {
	c = strings.Trim(strings.TrimSpace(c), "/")
	if c == "" {
		return "", ErrInvalidCollection
	}
	return c, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

type PostgresDocumentRepository struct {
	db database.DB
}

func NewPostgresDocumentRepository(db database.DB) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{db: db}
}

func (r *PostgresDocumentRepository) Create(ctx context.Context, collection string, record any) (string, error) {
	collection, err := normalizeCollection(collection)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	id := uuid.NewString()
	if _, err := r.db.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`,
		collection, id, b,
	); err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresDocumentRepository) Get(ctx context.Context, collection, id string, out any) error {
	collection, err := normalizeCollection(collection)
	if err != nil {
		return err
	}

	var b []byte
	row := r.db.QueryRow(ctx, `SELECT data FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err := row.Scan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return ErrDocumentNotFound
		}
		return err
	}
	return json.Unmarshal(b, out)
}

func (r *PostgresDocumentRepository) List(ctx context.Context, collection string, limit, offset int) ([]json.RawMessage, error) {
	collection, err := normalizeCollection(collection)
	if err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)

	rows, err := r.db.Query(ctx,
		`SELECT id, data
		 FROM documents
		 WHERE collection = $1
		 ORDER BY created_at DESC, id
		 LIMIT $2 OFFSET $3`,
		collection, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]json.RawMessage, 0)
	for rows.Next() {
		var id string
		var b []byte
		if err := rows.Scan(&id, &b); err != nil {
			return nil, err
		}
		out = append(out, withID(b, id))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// withID sets the "id" key of a JSON object so records stored without one
// still carry their key when listed.
func withID(b []byte, id string) json.RawMessage {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil || m == nil {
		return b
	}
	if _, ok := m["id"]; ok {
		return b
	}
	idJSON, _ := json.Marshal(id)
	m["id"] = idJSON
	nb, err := json.Marshal(m)
	if err != nil {
		return b
	}
	return nb
}

type memoryDocument struct {
	id        string
	data      []byte
	createdAt time.Time
	seq       int
}

// MemoryDocumentRepository is the in-process document store used when no
// database is configured.
type MemoryDocumentRepository struct {
	mu   sync.RWMutex
	docs map[string][]memoryDocument
	seq  int
	now  func() time.Time
}

func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{docs: map[string][]memoryDocument{}, now: time.Now}
}

func (r *MemoryDocumentRepository) Create(_ context.Context, collection string, record any) (string, error) {
	collection, err := normalizeCollection(collection)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	return r.put(collection, uuid.NewString(), b), nil
}

// Put stores a record under a caller-chosen id. It is how listings owned by
// the listings service land in the in-memory store.
func (r *MemoryDocumentRepository) Put(collection, id string, record any) error {
	collection, err := normalizeCollection(collection)
	if err != nil {
		return err
	}
	b, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	r.put(collection, id, b)
	return nil
}

func (r *MemoryDocumentRepository) put(collection, id string, b []byte) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.docs[collection] = append(r.docs[collection], memoryDocument{id: id, data: b, createdAt: r.now(), seq: r.seq})
	return id
}

func (r *MemoryDocumentRepository) Get(_ context.Context, collection, id string, out any) error {
	collection, err := normalizeCollection(collection)
	if err != nil {
		return err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	docs := r.docs[collection]
	for i := len(docs) - 1; i >= 0; i-- {
		if docs[i].id == id {
			return json.Unmarshal(docs[i].data, out)
		}
	}
	return ErrDocumentNotFound
}

func (r *MemoryDocumentRepository) List(_ context.Context, collection string, limit, offset int) ([]json.RawMessage, error) {
	collection, err := normalizeCollection(collection)
	if err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)

	r.mu.RLock()
	docs := make([]memoryDocument, len(r.docs[collection]))
	copy(docs, r.docs[collection])
	r.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool { return docs[i].seq > docs[j].seq })

	out := make([]json.RawMessage, 0, limit)
	for i := offset; i < len(docs) && len(out) < limit; i++ {
		out = append(out, withID(docs[i].data, docs[i].id))
	}
	return out, nil
}
