package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/internal/repository/testutil"
)

func TestEmailTemplateRepository_UpsertTemplate(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEmailTemplateRepository(db)

	newTemplate := func() *domain.EmailTemplate {
		return &domain.EmailTemplate{
			ID:          "tmpl-1",
			TenantID:    "tenant-1",
			Type:        domain.EmailTemplateWelcome,
			Subject:     "Welcome {{name}}",
			HTMLContent: "<p>Hello {{name}}</p>",
			IsActive:    true,
		}
	}

	t.Run("insert", func(t *testing.T) {
		template := newTemplate()
		mock.ExpectQuery(`INSERT INTO email_templates`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
				AddRow("tmpl-1", time.Now().UTC()))

		require.NoError(t, repo.UpsertTemplate(context.Background(), template))
		assert.Equal(t, "tmpl-1", template.ID)
	})

	t.Run("update keeps the persisted identity", func(t *testing.T) {
		originalCreatedAt := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Microsecond)
		template := newTemplate()

		mock.ExpectQuery(`INSERT INTO email_templates`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
				AddRow("tmpl-existing", originalCreatedAt))

		require.NoError(t, repo.UpsertTemplate(context.Background(), template))
		assert.Equal(t, "tmpl-existing", template.ID)
		assert.Equal(t, originalCreatedAt, template.CreatedAt)
	})
}

func TestEmailTemplateRepository_GetTemplateByType(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEmailTemplateRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows([]string{
		"id", "tenant_id", "type", "subject", "html_content", "text_content", "is_active", "available_variables", "created_at", "updated_at",
	}).AddRow("tmpl-1", "tenant-1", "WELCOME", "Welcome {{name}}", "<p>Hi</p>", nil, true, []byte(`{"name":"Recipient name"}`), now, now)

	mock.ExpectQuery(`SELECT (.+) FROM email_templates WHERE tenant_id = \$1 AND type = \$2`).
		WithArgs("tenant-1", domain.EmailTemplateWelcome).
		WillReturnRows(rows)

	template, err := repo.GetTemplateByType(context.Background(), "tenant-1", domain.EmailTemplateWelcome)
	require.NoError(t, err)
	assert.Equal(t, "Welcome {{name}}", template.Subject)
	assert.Equal(t, "Recipient name", template.AvailableVariables["name"])

	mock.ExpectQuery(`SELECT (.+) FROM email_templates`).
		WithArgs("tenant-1", domain.EmailTemplateInvoice).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetTemplateByType(context.Background(), "tenant-1", domain.EmailTemplateInvoice)
	require.Error(t, err)
	var notFound *domain.ErrEmailTemplateNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestEmailTemplateRepository_DeleteTemplate(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEmailTemplateRepository(db)

	mock.ExpectExec(`DELETE FROM email_templates`).
		WithArgs("tenant-1", domain.EmailTemplateWelcome).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteTemplate(context.Background(), "tenant-1", domain.EmailTemplateWelcome))

	mock.ExpectExec(`DELETE FROM email_templates`).
		WithArgs("tenant-1", domain.EmailTemplateInvoice).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTemplate(context.Background(), "tenant-1", domain.EmailTemplateInvoice)
	require.Error(t, err)
	var notFound *domain.ErrEmailTemplateNotFound
	assert.ErrorAs(t, err, &notFound)
}
