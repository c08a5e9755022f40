package usecase

import (
	"context"
	"errors"
	"strings"

	"pharma-info-service/internal/converter"
	"pharma-info-service/internal/delivery/dto"
	"pharma-info-service/internal/domain/entity"
	"pharma-info-service/internal/domain/repository"
	"pharma-info-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrDuplicateIdentity deliberately does not say whether the email or
	// the pharmacist id collided.
	ErrDuplicateIdentity  = errors.New("this email or pharmacist id is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is not active")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResult, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResult, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

func NewAuthUsecase(log *logrus.Logger, userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthUsecase {
	return &authUsecase{
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResult, error) {
	email := normalizeEmail(req.Email)

	// Best-effort pre-check; the unique indexes are the source of truth and
	// a concurrent insert is caught below.
	exists, err := u.userRepo.ExistsByEmailOrPharmacistID(ctx, email, req.PharmacistID)
	if err != nil {
		u.log.Warnf("Failed to check existing user: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateIdentity
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		PharmacistID: req.PharmacistID,
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         entity.RolePharmacist,
		IsActive:     &active,
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}
	if req.Address != nil {
		user.Address = entity.Address{
			Street:     req.Address.Street,
			City:       req.Address.City,
			District:   req.Address.District,
			PostalCode: req.Address.PostalCode,
		}
	}
	if req.Location != nil {
		if req.Location.Latitude != nil {
			user.Latitude = *req.Location.Latitude
		}
		if req.Location.Longitude != nil {
			user.Longitude = *req.Location.Longitude
		}
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateIdentity
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	return &dto.AuthResult{
		Token: token,
		User:  *converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResult, error) {
	user, err := u.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	// Unknown email and wrong password must be indistinguishable.
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active() {
		return nil, ErrAccountInactive
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	return &dto.AuthResult{
		Token: token,
		User:  *converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	// PostgreSQL error code 23505 = unique_violation
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
