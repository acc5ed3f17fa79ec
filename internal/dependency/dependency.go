package dependency

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/swayogurja/swayog-backend/internal/entity"
)

type (
	// DB is the subset of sqlx used by the store helpers. Both *sqlx.DB and
	// *sqlx.Tx satisfy it.
	DB interface {
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
		NamedQueryContext(ctx context.Context, query string, arg interface{}) (*sqlx.Rows, error)
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	}

	// Inquiries owns all writes to the inquiries table. Inserts are
	// single-row, append-only; the read paths exist for operational
	// querying only.
	Inquiries interface {
		// AddInquiry stores a validated inquiry and returns the stored row
		// including the server-assigned id and created_at. Storage failures
		// propagate unmodified.
		AddInquiry(ctx context.Context, insert entity.InquiryInsert) (entity.Inquiry, error)
		GetInquiryById(ctx context.Context, id int) (entity.Inquiry, error)
		GetInquiriesByEmail(ctx context.Context, email string) ([]entity.Inquiry, error)
		GetInquiriesPaged(ctx context.Context, limit, offset int) ([]entity.Inquiry, error)
	}

	// Repository groups the persistence collaborators handed to the API
	// layer.
	Repository interface {
		Inquiries() Inquiries
		Ping(ctx context.Context) error
		Close()
	}

	// Mailer sends transactional notification mail over SMTP. One
	// synchronous attempt per call, failure taxonomy per the mail package.
	Mailer interface {
		// ReceiverEmail resolves the single configured notification inbox
		// and fails descriptively when it is not configured.
		ReceiverEmail() (string, error)
		SendNewInquiry(ctx context.Context, inq *entity.Inquiry) error
		SendContactMessage(ctx context.Context, msg *entity.ContactMessage) error
	}

	// Assistant answers a visitor question given the caller-supplied
	// conversation history. Implementations are stateless across calls;
	// provider failures are absorbed into a canned fallback reply.
	Assistant interface {
		Chat(ctx context.Context, message string, history []entity.ChatMessage) string
	}
)
