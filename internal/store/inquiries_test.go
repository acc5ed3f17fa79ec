package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swayogurja/swayog-backend/internal/entity"
)

// newTestStore connects to the database named by POSTGRES_TEST_DSN and
// applies migrations. Tests are skipped when the variable is unset.
func newTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	ps, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(ps.Close)
	return ps
}

func testInsert(email string) entity.InquiryInsert {
	return entity.InquiryInsert{
		Name:          "Asha Patil",
		Email:         email,
		Phone:         "9272099152",
		CustomerNo:    "MSEB-1234",
		ProjectType:   entity.ProjectTypeResidential,
		Message:       "Need a 3kW rooftop quote.",
		TermsAccepted: true,
	}
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func TestNewRequiresDSN(t *testing.T) {
	_, err := New(context.Background(), Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestAddInquiry(t *testing.T) {
	ps := newTestStore(t)
	ctx := context.Background()

	insert := testInsert(uniqueEmail("add"))
	got, err := ps.Inquiries().AddInquiry(ctx, insert)
	require.NoError(t, err)

	assert.Greater(t, got.Id, 0)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, insert, got.InquiryInsert)
}

func TestGetInquiryById(t *testing.T) {
	ps := newTestStore(t)
	ctx := context.Background()

	added, err := ps.Inquiries().AddInquiry(ctx, testInsert(uniqueEmail("byid")))
	require.NoError(t, err)

	got, err := ps.Inquiries().GetInquiryById(ctx, added.Id)
	require.NoError(t, err)
	assert.Equal(t, added.Id, got.Id)
	assert.Equal(t, added.Email, got.Email)

	_, err = ps.Inquiries().GetInquiryById(ctx, -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetInquiriesByEmail(t *testing.T) {
	ps := newTestStore(t)
	ctx := context.Background()

	email := uniqueEmail("byemail")
	first, err := ps.Inquiries().AddInquiry(ctx, testInsert(email))
	require.NoError(t, err)
	second, err := ps.Inquiries().AddInquiry(ctx, testInsert(email))
	require.NoError(t, err)

	got, err := ps.Inquiries().GetInquiriesByEmail(ctx, email)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first.
	assert.Equal(t, second.Id, got[0].Id)
	assert.Equal(t, first.Id, got[1].Id)

	got, err = ps.Inquiries().GetInquiriesByEmail(ctx, uniqueEmail("nobody"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetInquiriesPaged(t *testing.T) {
	ps := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := ps.Inquiries().AddInquiry(ctx, testInsert(uniqueEmail("paged")))
		require.NoError(t, err)
	}

	got, err := ps.Inquiries().GetInquiriesPaged(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Zero limit falls back to the default page size.
	got, err = ps.Inquiries().GetInquiriesPaged(ctx, 0, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 50)
}

func TestPing(t *testing.T) {
	ps := newTestStore(t)
	require.NoError(t, ps.Ping(context.Background()))
}
