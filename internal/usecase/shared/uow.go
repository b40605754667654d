package shared

import (
	"context"
	"time"

	"bioinsight-quotes/internal/domain/quote"
	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Quotes() QuoteRepository
	VendorRequests() VendorRequestRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal lookups the write side needs; they stay
// separate from the read-side view queries (CQRS separation).
type CommandReads interface {
	QuoteByID(ctx context.Context, id uuid.UUID) (*QuoteRecord, error)
	QuoteItems(ctx context.Context, quoteID uuid.UUID) ([]*quote.Item, error)
	QuoteItemByID(ctx context.Context, quoteID, itemID uuid.UUID) (*quote.Item, error)
}

// QuoteRecord is a minimal write-side snapshot of a quote row.
type QuoteRecord struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Title   string
}

// VendorRequestRecord is the write-side image of a vendor request row, rich
// enough to rehydrate the domain entity for a state transition.
type VendorRequestRecord struct {
	ID          uuid.UUID
	QuoteID     uuid.UUID
	VendorEmail string
	VendorName  string
	AccessToken string
	Status      vendorreq.Status
	Snapshot    vendorreq.Snapshot
	CreatedAt   time.Time
	ExpiresAt   time.Time
	RespondedAt *time.Time
}

type QuoteRepository interface {
	Create(ctx context.Context, db db.DBTX, q *quote.Quote) (uuid.UUID, error)
	AddItem(ctx context.Context, db db.DBTX, item *quote.Item) (uuid.UUID, error)
	UpdateItem(ctx context.Context, db db.DBTX, item *quote.Item) error
	DeleteItem(ctx context.Context, db db.DBTX, quoteID, itemID uuid.UUID) error
}

type VendorRequestRepository interface {
	Create(ctx context.Context, db db.DBTX, req *vendorreq.VendorRequest) (uuid.UUID, error)
	// LockByToken/LockByID take a row lock so that a state-transition check
	// and its write execute as one atomic unit against concurrent submitters.
	LockByToken(ctx context.Context, db db.DBTX, token string) (*VendorRequestRecord, error)
	LockByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*VendorRequestRecord, error)
	// MarkResponded is additionally conditional on the stored status still
	// being sent; it reports whether the transition actually applied.
	MarkResponded(ctx context.Context, db db.DBTX, id uuid.UUID, respondedAt time.Time) (bool, error)
	Cancel(ctx context.Context, db db.DBTX, id uuid.UUID) (bool, error)
	InsertResponseItems(ctx context.Context, db db.DBTX, requestID uuid.UUID, items []vendorreq.ResponseItem) error
}
