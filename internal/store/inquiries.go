package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/swayogurja/swayog-backend/internal/dependency"
	"github.com/swayogurja/swayog-backend/internal/entity"
)

type inquiriesStore struct {
	*PostgresStore
}

// Inquiries returns an object implementing the Inquiries interface.
func (ps *PostgresStore) Inquiries() dependency.Inquiries {
	return &inquiriesStore{
		PostgresStore: ps,
	}
}

const inquiryColumns = `id, name, email, phone, customer_no, project_type, message, terms_accepted, created_at`

// AddInquiry inserts a validated inquiry and returns the stored row with the
// server-assigned id and created_at. The insert returns exactly one row;
// any storage failure propagates unmodified to the caller.
func (s *inquiriesStore) AddInquiry(ctx context.Context, insert entity.InquiryInsert) (entity.Inquiry, error) {
	query := fmt.Sprintf(`
		INSERT INTO inquiries (name, email, phone, customer_no, project_type, message, terms_accepted)
		VALUES (:name, :email, :phone, :customer_no, :project_type, :message, :terms_accepted)
		RETURNING %s`, inquiryColumns)

	inquiry, err := QueryNamedOne[entity.Inquiry](ctx, s.DB(), query, map[string]any{
		"name":           insert.Name,
		"email":          insert.Email,
		"phone":          insert.Phone,
		"customer_no":    insert.CustomerNo,
		"project_type":   insert.ProjectType,
		"message":        insert.Message,
		"terms_accepted": insert.TermsAccepted,
	})
	if err != nil {
		return entity.Inquiry{}, fmt.Errorf("can't add inquiry: %w", err)
	}
	return inquiry, nil
}

func (s *inquiriesStore) GetInquiryById(ctx context.Context, id int) (entity.Inquiry, error) {
	query := fmt.Sprintf(`SELECT %s FROM inquiries WHERE id = :id`, inquiryColumns)

	inquiry, err := QueryNamedOne[entity.Inquiry](ctx, s.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Inquiry{}, fmt.Errorf("inquiry not found")
		}
		return entity.Inquiry{}, fmt.Errorf("can't get inquiry: %w", err)
	}
	return inquiry, nil
}

func (s *inquiriesStore) GetInquiriesByEmail(ctx context.Context, email string) ([]entity.Inquiry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM inquiries
		WHERE email = :email
		ORDER BY created_at DESC`, inquiryColumns)

	inquiries, err := QueryListNamed[entity.Inquiry](ctx, s.DB(), query, map[string]any{
		"email": email,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get inquiries by email: %w", err)
	}
	return inquiries, nil
}

func (s *inquiriesStore) GetInquiriesPaged(ctx context.Context, limit, offset int) ([]entity.Inquiry, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT %s FROM inquiries
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset`, inquiryColumns)

	inquiries, err := QueryListNamed[entity.Inquiry](ctx, s.DB(), query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get inquiries: %w", err)
	}
	return inquiries, nil
}
