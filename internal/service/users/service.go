package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	userRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/user"
	"github.com/hotelharmony/hotel-ops-service/internal/service/users/models"
	"github.com/hotelharmony/hotel-ops-service/pkg/ptr"
)

const minPasswordLength = 8

// Service manages guest and staff accounts.
type Service struct {
	userRepo   UserRepository
	tokens     TokenIssuer
	bcryptCost int
	logger     Logger
}

// NewService creates an account service.
func NewService(userRepo UserRepository, tokens TokenIssuer, bcryptCost int, logger Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates an account. The caller decides which roles are allowed
// on its route, the service only checks the role is a known one.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: invalid input for username=%s: %v", req.Username, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Role:         domain.Role(req.Role),
		Enabled:      true,
	}

	if user.Role == domain.RoleGuest {
		user.LoyaltyPoints = ptr.Ptr(0)
	} else {
		user.Department = req.Department
		user.Position = req.Position
		user.StaffStatus = ptr.Ptr("active")
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrDuplicateUsername):
			s.logger.Warn("Register: username taken: %s", req.Username)
			return nil, ErrUsernameTaken
		case errors.Is(err, userRepo.ErrDuplicateEmail):
			s.logger.Warn("Register: email taken: %s", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: account created: id=%d, role=%s", created.ID, created.Role)
	return models.FromDomainUser(created), nil
}

// Authenticate checks the credentials and issues an access token.
func (s *Service) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Authenticate: unknown username: %s", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Authenticate: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	if !user.Enabled {
		s.logger.Warn("Authenticate: disabled account: id=%d", user.ID)
		return nil, ErrAccountDisabled
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("Authenticate: failed to issue token for id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Authenticate - issue token: %v", ErrInternal, err)
	}

	// A failed timestamp update should not block the login
	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn("Authenticate: failed to record login time for id=%d: %v", user.ID, err)
	}

	s.logger.Info("Authenticate: login successful: id=%d, role=%s", user.ID, user.Role)
	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(user),
	}, nil
}

// Get returns the account with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Get: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// List returns accounts, optionally filtered by role.
func (s *Service) List(ctx context.Context, role *string) (*models.UserListResponse, error) {
	var domainRole *domain.Role
	if role != nil {
		if !domain.ValidRole(*role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *role)
		}
		domainRole = ptr.Ptr(domain.Role(*role))
	}

	users, err := s.userRepo.List(ctx, domainRole)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUserList(users), nil
}

// UpdateProfile updates the account's contact details.
func (s *Service) UpdateProfile(ctx context.Context, id int64, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	if strings.TrimSpace(req.Name) == "" || !validEmail(req.Email) {
		return nil, fmt.Errorf("%w: name and a valid email are required", ErrInvalidInput)
	}

	err := s.userRepo.UpdateProfile(ctx, id, strings.TrimSpace(req.Name), strings.ToLower(strings.TrimSpace(req.Email)), req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, userRepo.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		s.logger.Error("UpdateProfile: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: profile updated: id=%d", id)
	return s.Get(ctx, id)
}

// SetEnabled enables or disables an account.
func (s *Service) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	err := s.userRepo.SetEnabled(ctx, id, enabled)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("SetEnabled: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: SetEnabled - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetEnabled: account id=%d enabled=%t", id, enabled)
	return nil
}

func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !validEmail(req.Email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if !domain.ValidRole(req.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	return nil
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
