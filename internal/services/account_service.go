package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fixitfast/internal/config"
	"fixitfast/internal/models/db_models"
	"fixitfast/internal/models/request_models"
	"fixitfast/internal/models/response_models"
	"fixitfast/internal/repositories"
	"fixitfast/pkg/logger"
	mem "fixitfast/pkg/memcache"
	"fixitfast/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*db_models.Account, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	AdminLogin(ctx context.Context, req request_models.AdminLoginRequest) (*response_models.LoginResponse, error)
	AdminSignUp(ctx context.Context, req request_models.AdminSignUpRequest) (*response_models.AdminSignUpResponse, error)
	ChangeAdminPassword(ctx context.Context, req request_models.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error

	GetAccount(ctx context.Context, id uuid.UUID) (*db_models.Account, error)

	CreateLabour(ctx context.Context, adminID uuid.UUID, req request_models.CreateLabourRequest) (*db_models.Account, error)
	ListLabours(ctx context.Context, page, limit int) ([]db_models.Account, int64, error)
	UpdateLabour(ctx context.Context, id uuid.UUID, req request_models.UpdateLabourRequest) (*db_models.Account, error)
	DeleteLabour(ctx context.Context, id uuid.UUID) error
	UpdateRole(ctx context.Context, actorRole string, id uuid.UUID, newRole string) (*db_models.Account, error)
}

type accountService struct {
	accountRepo repositories.AccountRepository
	resetTokens mem.ResetTokenStore
	mailService IMailService
	cfg         *config.Config
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens mem.ResetTokenStore,
	mailService IMailService,
	cfg *config.Config,
) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		resetTokens: resetTokens,
		mailService: mailService,
		cfg:         cfg,
	}
}

func (s *accountService) Register(ctx context.Context, req request_models.SignUpRequest) (*db_models.Account, error) {
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hashed,
		Role:         db_models.RoleUser,
		Phone:        req.Phone,
		City:         strings.TrimSpace(req.City),
		District:     strings.TrimSpace(req.District),
		Pincode:      req.Pincode,
		Active:       true,
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login authenticates citizens and field workers. Admins must go through
// AdminLogin so the secret-key factor cannot be skipped.
func (s *accountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := s.accountRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if account == nil || utils.ComparePasswords(account.PasswordHash, req.Password) != nil {
		return nil, fmt.Errorf("%w: invalid email or password", utils.ErrUnauthorized)
	}
	if account.IsAdmin() {
		return nil, fmt.Errorf("%w: use the admin login endpoint", utils.ErrForbidden)
	}
	if account.Role == db_models.RoleLabour && !account.Active {
		return nil, fmt.Errorf("%w: account is deactivated", utils.ErrForbidden)
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}
	return &response_models.LoginResponse{Token: token, Role: account.Role}, nil
}

func (s *accountService) AdminLogin(ctx context.Context, req request_models.AdminLoginRequest) (*response_models.LoginResponse, error) {
	account, err := s.accountRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsAdmin() || utils.ComparePasswords(account.PasswordHash, req.Password) != nil {
		return nil, fmt.Errorf("%w: invalid email or password", utils.ErrUnauthorized)
	}

	// The secret key is required until the account completes its first
	// password change, which clears the hash.
	if account.SecretKeyHash != "" {
		if req.SecretKey == "" || utils.ComparePasswords(account.SecretKeyHash, req.SecretKey) != nil {
			return nil, fmt.Errorf("%w: invalid secret key", utils.ErrUnauthorized)
		}
	}

	if account.MustChangePassword || account.TemporaryPassword {
		return &response_models.LoginResponse{RequirePasswordChange: true},
			fmt.Errorf("%w: temporary password must be changed before login", utils.ErrPasswordChangeRequired)
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}
	return &response_models.LoginResponse{Token: token, Role: account.Role}, nil
}

func (s *accountService) AdminSignUp(ctx context.Context, req request_models.AdminSignUpRequest) (*response_models.AdminSignUpResponse, error) {
	if s.cfg.AdminSignupKey == "" {
		return nil, fmt.Errorf("%w: admin self-registration is disabled", utils.ErrForbidden)
	}
	if subtle.ConstantTimeCompare([]byte(req.SecretKey), []byte(s.cfg.AdminSignupKey)) != 1 {
		return nil, fmt.Errorf("%w: invalid signup key", utils.ErrForbidden)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// Personal secret key, shown exactly once in the response.
	secretKey, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, err
	}
	secretHash, err := utils.HashPassword(secretKey)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Name:          strings.TrimSpace(req.Name),
		Email:         normalizeEmail(req.Email),
		PasswordHash:  hashed,
		Role:          db_models.RoleAdmin,
		City:          strings.TrimSpace(req.City),
		District:      strings.TrimSpace(req.District),
		Pincode:       req.Pincode,
		Active:        true,
		SecretKeyHash: secretHash,
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return nil, err
	}
	return &response_models.AdminSignUpResponse{Account: *account, SecretKey: secretKey}, nil
}

func (s *accountService) ChangeAdminPassword(ctx context.Context, req request_models.ChangePasswordRequest) error {
	account, err := s.accountRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return err
	}
	if account == nil || !account.IsAdmin() || utils.ComparePasswords(account.PasswordHash, req.CurrentPassword) != nil {
		return fmt.Errorf("%w: invalid email or password", utils.ErrUnauthorized)
	}
	if req.NewPassword == req.CurrentPassword {
		return fmt.Errorf("%w: new password must differ from the current one", utils.ErrValidation)
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	account.PasswordHash = hashed
	account.MustChangePassword = false
	account.TemporaryPassword = false
	account.PasswordChangedAt = &now
	// The one-time secret key retires after the first password change.
	account.SecretKeyHash = ""

	return s.accountRepo.Save(ctx, account)
}

// ForgotPassword always reports success to the caller so the endpoint does
// not reveal whether an email is registered.
func (s *accountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := s.accountRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return err
	}
	s.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := s.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		logger.Error().Err(err).Str("email", account.Email).Msg("failed to send reset password mail")
	}
	return nil
}

func (s *accountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email := s.resetTokens.Consume(token)
	if email == "" {
		return fmt.Errorf("%w: invalid or expired reset token", utils.ErrUnauthorized)
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("%w: account no longer exists", utils.ErrNotFound)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	now := time.Now()
	account.PasswordHash = hashed
	account.PasswordChangedAt = &now
	return s.accountRepo.Save(ctx, account)
}

func (s *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: account not found", utils.ErrNotFound)
	}
	return account, nil
}

// CreateLabour registers a field worker under the creating admin's service
// area; the labour inherits the admin's city, district and pincode.
func (s *accountService) CreateLabour(ctx context.Context, adminID uuid.UUID, req request_models.CreateLabourRequest) (*db_models.Account, error) {
	admin, err := s.accountRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, fmt.Errorf("%w: admin account not found", utils.ErrUnauthorized)
	}
	if admin.City == "" || admin.District == "" || admin.Pincode == "" {
		return nil, fmt.Errorf("%w: admin profile must have city, district and pincode before creating workers", utils.ErrValidation)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hashed,
		Role:         db_models.RoleLabour,
		Phone:        req.Phone,
		City:         admin.City,
		District:     admin.District,
		Pincode:      admin.Pincode,
		Skills:       req.Skills,
		Active:       true,
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListLabours(ctx context.Context, page, limit int) ([]db_models.Account, int64, error) {
	page, limit = normalizePage(page, limit)
	return s.accountRepo.ListByRole(ctx, db_models.RoleLabour, page, limit)
}

func (s *accountService) UpdateLabour(ctx context.Context, id uuid.UUID, req request_models.UpdateLabourRequest) (*db_models.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Role != db_models.RoleLabour {
		return nil, fmt.Errorf("%w: labour not found", utils.ErrNotFound)
	}

	if req.Name != "" {
		account.Name = strings.TrimSpace(req.Name)
	}
	if req.Phone != "" {
		account.Phone = req.Phone
	}
	if req.Skills != nil {
		account.Skills = req.Skills
	}
	if req.Active != nil {
		account.Active = *req.Active
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) DeleteLabour(ctx context.Context, id uuid.UUID) error {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil || account.Role != db_models.RoleLabour {
		return fmt.Errorf("%w: labour not found", utils.ErrNotFound)
	}

	ok, err := s.accountRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: labour not found", utils.ErrNotFound)
	}
	return nil
}

func (s *accountService) UpdateRole(ctx context.Context, actorRole string, id uuid.UUID, newRole string) (*db_models.Account, error) {
	if actorRole != db_models.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: only a superadmin can change roles", utils.ErrForbidden)
	}
	if !db_models.ValidRole(newRole) {
		return nil, fmt.Errorf("%w: unknown role %q", utils.ErrValidation, newRole)
	}

	ok, err := s.accountRepo.UpdateRole(ctx, id, newRole)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: account not found", utils.ErrNotFound)
	}
	return s.GetAccount(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
