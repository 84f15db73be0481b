package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/repository"
	"github.com/nihatdadaloglu/oda/internal/testutil"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

type intakeFixture struct {
	svc         *IntakeService
	notifier    *recordingNotifier
	files       *memoryFileStore
	contacts    *repository.Store[model.ContactMessage, *model.ContactMessage]
	memberships *repository.Store[model.MembershipApplication, *model.MembershipApplication]
}

func newIntakeFixture(t *testing.T) *intakeFixture {
	db := testutil.OpenTestDB(t)
	f := &intakeFixture{
		notifier:    &recordingNotifier{},
		files:       newMemoryFileStore(),
		contacts:    repository.NewStore[model.ContactMessage](db, repository.ContactSchema),
		memberships: repository.NewStore[model.MembershipApplication](db, repository.MembershipSchema),
	}
	ingestor := NewFileIngestor(f.files, DefaultMaxUploadSize, logger.NewNop())
	f.svc = NewIntakeService(f.contacts, f.memberships, ingestor, f.notifier, "admin@example.com", "ODA", logger.NewNop())
	return f
}

func TestSubmitContact(t *testing.T) {
	ctx := context.Background()
	f := newIntakeFixture(t)

	msg, err := f.svc.SubmitContact(ctx, ContactForm{Name: "Ayşe", Email: "ayse@example.com", Phone: "555", Message: "Merhaba <b>"})
	require.NoError(t, err)
	assert.Equal(t, "new", msg.Status)

	stored, err := f.contacts.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Merhaba <b>", stored.Message)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "admin@example.com", f.notifier.sent[0].To)
	assert.Equal(t, "İletişim Formu - Ayşe", f.notifier.sent[0].Subject)
	assert.Contains(t, f.notifier.sent[0].Body, "Merhaba &lt;b&gt;")
}

func TestSubmitContact_MissingFieldsNotStored(t *testing.T) {
	ctx := context.Background()
	f := newIntakeFixture(t)

	_, err := f.svc.SubmitContact(ctx, ContactForm{Name: "Ayşe", Email: "ayse@example.com"})
	assert.ErrorIs(t, err, apperror.ErrMalformedInput)

	n, err := f.contacts.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, f.notifier.sent)
}

func TestSubmitMembership_FiltersFiles(t *testing.T) {
	ctx := context.Background()
	f := newIntakeFixture(t)

	app, err := f.svc.SubmitMembership(ctx, MembershipForm{
		Name: "Mehmet", Email: "m@example.com", Phone: "555", Address: "Kayseri", TaxNumber: "1234567890",
	}, []IncomingFile{
		{Name: "vergi_levhasi.pdf", Data: []byte("pdf")},
		{Name: "setup.exe", Data: []byte("exe")},
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", app.Status)
	assert.Nil(t, app.Note)

	stored, err := f.memberships.Get(ctx, app.ID)
	require.NoError(t, err)
	require.Len(t, stored.Files, 1)
	assert.Regexp(t, `^/uploads/\d{8}_\d{6}_[a-z0-9]{8}\.pdf$`, stored.Files[0])

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "Üyelik Başvurusu - Mehmet", f.notifier.sent[0].Subject)
}

func TestFindStatus(t *testing.T) {
	ctx := context.Background()
	f := newIntakeFixture(t)

	app, err := f.svc.SubmitMembership(ctx, MembershipForm{
		Name: "Zeynep", Email: "z@example.com", Phone: "1", Address: "a", TaxNumber: "999",
	}, nil)
	require.NoError(t, err)

	byEmail, err := f.svc.FindStatus(ctx, "z@example.com")
	require.NoError(t, err)
	assert.Equal(t, &model.MembershipStatus{Name: "Zeynep", Status: "pending", CreatedAt: app.CreatedAt}, byEmail)

	byTax, err := f.svc.FindStatus(ctx, "999")
	require.NoError(t, err)
	assert.Equal(t, byEmail, byTax)

	_, err = f.svc.FindStatus(ctx, "Zeynep")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.svc.FindStatus(ctx, "missing@example.com")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.svc.FindStatus(ctx, "")
	assert.ErrorIs(t, err, apperror.ErrMalformedInput)

	for _, query := range []string{"  ", "  z@example.com\t", "Z@EXAMPLE.COM", "999 "} {
		_, err = f.svc.FindStatus(ctx, query)
		assert.ErrorIs(t, err, apperror.ErrNotFound, query)
	}
}

func TestFindStatus_MostRecentMatch(t *testing.T) {
	ctx := context.Background()
	f := newIntakeFixture(t)

	form := MembershipForm{Name: "Eski", Email: "tekrar@example.com", Phone: "1", Address: "a", TaxNumber: "1"}
	_, err := f.svc.SubmitMembership(ctx, form, nil)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	form.Name = "Yeni"
	_, err = f.svc.SubmitMembership(ctx, form, nil)
	require.NoError(t, err)

	status, err := f.svc.FindStatus(ctx, "tekrar@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Yeni", status.Name)
}
