package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Hemasri-atike/Ihire-sub000/config"
	"github.com/Hemasri-atike/Ihire-sub000/internal/domain"
	"github.com/Hemasri-atike/Ihire-sub000/internal/usecase"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/apperror"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/email"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/logger"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init()
}

// Mock Repositories

type MockInviteRepo struct {
	mock.Mock
}

func (m *MockInviteRepo) Create(ctx context.Context, invite *domain.Invite) (int64, error) {
	args := m.Called(ctx, invite)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInviteRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInviteRepo) ListOutstanding(ctx context.Context) ([]domain.OutstandingInvite, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutstandingInvite), args.Error(1)
}

func (m *MockInviteRepo) ListByCompany(ctx context.Context, filter domain.InviteFilter) ([]domain.Invite, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Invite), args.Get(1).(int64), args.Error(2)
}

func (m *MockInviteRepo) Accept(ctx context.Context, invite *domain.Invite, employerID int64) error {
	return m.Called(ctx, invite, employerID).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

// fakeMailer captures sent invite emails instead of hitting SMTP
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail error
}

type sentMail struct {
	to   string
	data email.InviteEmailData
}

func (f *fakeMailer) SendInviteEmail(to string, data email.InviteEmailData) error {
	if f.fail != nil {
		return f.fail
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, data: data})
	return nil
}

func (f *fakeMailer) IsConfigured() bool { return true }

// lastToken pulls the plaintext token out of the captured accept link
func (f *fakeMailer) lastToken(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent)
	link := f.sent[len(f.sent)-1].data.AcceptLink
	_, tok, found := strings.Cut(link, "token=")
	require.True(t, found, "accept link %q has no token parameter", link)
	return tok
}

func testConfig() *config.Config {
	return &config.Config{
		FrontendURL:    "https://app.ihire.example.com",
		InviteTTLHours: 168,
		BcryptCost:     10,
	}
}

func issuerWithRole(role string) *domain.Employer {
	companyID := int64(5)
	return &domain.Employer{
		ID:        7,
		UserID:    "user-7",
		Email:     "boss@x.com",
		Role:      role,
		CompanyID: &companyID,
	}
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestIssueAuthorization(t *testing.T) {
	inviteRepo := new(MockInviteRepo)
	companyRepo := new(MockCompanyRepo)
	mailer := &fakeMailer{}
	uc := usecase.NewInviteUsecase(inviteRepo, companyRepo, mailer, validator.New(), testConfig())

	t.Run("Viewer cannot issue invites", func(t *testing.T) {
		err := uc.Issue(context.Background(), issuerWithRole(domain.RoleViewer), "bob@x.com", domain.RoleRecruiter)
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
	})

	t.Run("Nil issuer fails safe", func(t *testing.T) {
		err := uc.Issue(context.Background(), nil, "bob@x.com", domain.RoleRecruiter)
		assert.Equal(t, http.StatusUnauthorized, appCode(t, err))
	})

	t.Run("Owner role cannot be granted by invite", func(t *testing.T) {
		err := uc.Issue(context.Background(), issuerWithRole(domain.RoleAdmin), "bob@x.com", domain.RoleOwner)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})

	t.Run("Malformed email is rejected", func(t *testing.T) {
		err := uc.Issue(context.Background(), issuerWithRole(domain.RoleAdmin), "not-an-email", domain.RoleRecruiter)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})
}

func TestIssueCompanyNotFound(t *testing.T) {
	inviteRepo := new(MockInviteRepo)
	companyRepo := new(MockCompanyRepo)
	mailer := &fakeMailer{}
	uc := usecase.NewInviteUsecase(inviteRepo, companyRepo, mailer, validator.New(), testConfig())

	companyRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)

	err := uc.Issue(context.Background(), issuerWithRole(domain.RoleOwner), "bob@x.com", domain.RoleRecruiter)
	assert.Equal(t, http.StatusNotFound, appCode(t, err))
	inviteRepo.AssertNotCalled(t, "Create")
}

func TestIssuePersistsHashedTokenWithSevenDayExpiry(t *testing.T) {
	inviteRepo := new(MockInviteRepo)
	companyRepo := new(MockCompanyRepo)
	mailer := &fakeMailer{}
	uc := usecase.NewInviteUsecase(inviteRepo, companyRepo, mailer, validator.New(), testConfig())

	companyRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Company{ID: 5, Name: "Acme"}, nil)

	var stored *domain.Invite
	inviteRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invite")).
		Return(int64(1), nil).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.Invite)
		})

	err := uc.Issue(context.Background(), issuerWithRole(domain.RoleAdmin), "Bob@X.com", domain.RoleRecruiter)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "bob@x.com", stored.Email, "email is normalized before storage")
	assert.Equal(t, int64(5), stored.CompanyID)
	assert.Equal(t, int64(7), stored.CreatedBy)
	assert.False(t, stored.Used)
	assert.Equal(t, stored.CreatedAt.Add(7*24*time.Hour), stored.ExpiresAt, "expiry is exactly creation plus seven days")

	plaintext := mailer.lastToken(t)
	assert.Len(t, plaintext, 64)
	assert.NotEqual(t, plaintext, stored.TokenHash, "plaintext token must never be persisted")
	assert.True(t, token.Matches(stored.TokenHash, plaintext))
}

func TestIssueCompensatesWhenEmailFails(t *testing.T) {
	inviteRepo := new(MockInviteRepo)
	companyRepo := new(MockCompanyRepo)
	mailer := &fakeMailer{fail: errors.New("smtp: connection refused")}
	uc := usecase.NewInviteUsecase(inviteRepo, companyRepo, mailer, validator.New(), testConfig())

	companyRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Company{ID: 5, Name: "Acme"}, nil)
	inviteRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invite")).Return(int64(42), nil)
	inviteRepo.On("Delete", mock.Anything, int64(42)).Return(nil)

	err := uc.Issue(context.Background(), issuerWithRole(domain.RoleAdmin), "bob@x.com", domain.RoleRecruiter)
	assert.Equal(t, http.StatusInternalServerError, appCode(t, err))
	inviteRepo.AssertCalled(t, "Delete", mock.Anything, int64(42))
}

func outstandingInvite(t *testing.T, plaintext string) domain.OutstandingInvite {
	t.Helper()
	hash, err := token.Hash(plaintext, 10)
	require.NoError(t, err)
	return domain.OutstandingInvite{
		Invite: domain.Invite{
			ID:        1,
			CompanyID: 5,
			Email:     "bob@x.com",
			Role:      domain.RoleRecruiter,
			TokenHash: hash,
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedBy: 7,
			CreatedAt: time.Now(),
		},
		CompanyName: "Acme",
	}
}

func TestValidateToken(t *testing.T) {
	plaintext, err := token.Generate()
	require.NoError(t, err)
	row := outstandingInvite(t, plaintext)

	inviteRepo := new(MockInviteRepo)
	companyRepo := new(MockCompanyRepo)
	uc := usecase.NewInviteUsecase(inviteRepo, companyRepo, &fakeMailer{}, validator.New(), testConfig())

	inviteRepo.On("ListOutstanding", mock.Anything).Return([]domain.OutstandingInvite{row}, nil)

	t.Run("Matching token reveals email and company", func(t *testing.T) {
		preview, err := uc.Validate(context.Background(), plaintext)
		require.NoError(t, err)
		assert.Equal(t, "bob@x.com", preview.Email)
		assert.Equal(t, int64(5), preview.CompanyID)
		assert.Equal(t, "Acme", preview.CompanyName)
		assert.Equal(t, domain.RoleRecruiter, preview.Role)
	})

	t.Run("Empty token is rejected", func(t *testing.T) {
		_, err := uc.Validate(context.Background(), "  ")
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})
}

func TestValidateNonDistinguishability(t *testing.T) {
	// A well-formed token that never existed and a token whose invite is
	// used or expired must produce the same error. Used and expired rows
	// never reach the scan, so both cases are a scan miss.
	inviteRepo := new(MockInviteRepo)
	companyRepo := new(MockCompanyRepo)
	uc := usecase.NewInviteUsecase(inviteRepo, companyRepo, &fakeMailer{}, validator.New(), testConfig())

	someToken, err := token.Generate()
	require.NoError(t, err)
	otherRow := outstandingInvite(t, "unrelated-token")

	inviteRepo.On("ListOutstanding", mock.Anything).Return([]domain.OutstandingInvite{otherRow}, nil).Once()
	_, errMiss := uc.Validate(context.Background(), someToken)

	inviteRepo.On("ListOutstanding", mock.Anything).Return([]domain.OutstandingInvite{}, nil).Once()
	_, errEmpty := uc.Validate(context.Background(), someToken)

	assert.Equal(t, appCode(t, errMiss), appCode(t, errEmpty))
	assert.Equal(t, errMiss.Error(), errEmpty.Error())
}

func TestAcceptEmailMismatch(t *testing.T) {
	plaintext, err := token.Generate()
	require.NoError(t, err)
	row := outstandingInvite(t, plaintext)

	inviteRepo := new(MockInviteRepo)
	companyRepo := new(MockCompanyRepo)
	uc := usecase.NewInviteUsecase(inviteRepo, companyRepo, &fakeMailer{}, validator.New(), testConfig())

	inviteRepo.On("ListOutstanding", mock.Anything).Return([]domain.OutstandingInvite{row}, nil)

	err = uc.Accept(context.Background(), 42, "mallory@evil.com", plaintext)
	assert.Equal(t, http.StatusForbidden, appCode(t, err))
	inviteRepo.AssertNotCalled(t, "Accept")
}

func TestAcceptRaceLoserGetsConflict(t *testing.T) {
	plaintext, err := token.Generate()
	require.NoError(t, err)
	row := outstandingInvite(t, plaintext)

	inviteRepo := new(MockInviteRepo)
	companyRepo := new(MockCompanyRepo)
	uc := usecase.NewInviteUsecase(inviteRepo, companyRepo, &fakeMailer{}, validator.New(), testConfig())

	inviteRepo.On("ListOutstanding", mock.Anything).Return([]domain.OutstandingInvite{row}, nil)
	// The conditional update saw zero rows: someone else redeemed first
	inviteRepo.On("Accept", mock.Anything, mock.AnythingOfType("*domain.Invite"), int64(42)).
		Return(domain.ErrInviteUnavailable)

	err = uc.Accept(context.Background(), 42, "bob@x.com", plaintext)
	assert.Equal(t, http.StatusBadRequest, appCode(t, err))
}

func TestListCompanyInvites(t *testing.T) {
	inviteRepo := new(MockInviteRepo)
	companyRepo := new(MockCompanyRepo)
	uc := usecase.NewInviteUsecase(inviteRepo, companyRepo, &fakeMailer{}, validator.New(), testConfig())

	t.Run("Viewer cannot list", func(t *testing.T) {
		_, _, err := uc.ListCompanyInvites(context.Background(), issuerWithRole(domain.RoleViewer), 1, 10)
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
	})

	t.Run("Defaults page and limit", func(t *testing.T) {
		inviteRepo.On("ListByCompany", mock.Anything, domain.InviteFilter{CompanyID: 5, Page: 1, Limit: 10}).
			Return([]domain.Invite{}, int64(0), nil)

		_, _, err := uc.ListCompanyInvites(context.Background(), issuerWithRole(domain.RoleOwner), 0, -3)
		assert.NoError(t, err)
		inviteRepo.AssertExpectations(t)
	})
}
