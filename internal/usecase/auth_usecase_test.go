package usecase

import (
	"context"
	"testing"
	"time"

	"pharma-info-service/config"
	"pharma-info-service/internal/delivery/dto"
	"pharma-info-service/internal/domain/entity"
	"pharma-info-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmailOrPharmacistID(ctx context.Context, email, pharmacistID string) (bool, error) {
	args := m.Called(ctx, email, pharmacistID)
	return args.Bool(0), args.Error(1)
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: 24 * time.Hour})
}

func testRegisterRequest() *dto.RegisterRequest {
	lat, lng := 41.0082, 28.9784
	return &dto.RegisterRequest{
		PharmacistID: "ECZ123456",
		Name:         "Test",
		Surname:      "User",
		Email:        "Test@Example.com",
		Phone:        "+905551112233",
		Password:     "password123",
		Address: &dto.AddressRequest{
			Street:     "Main St",
			City:       "Istanbul",
			District:   "Kadikoy",
			PostalCode: "34710",
		},
		Location: &dto.LocationRequest{Latitude: &lat, Longitude: &lng},
	}
}

func TestAuthUsecase_Register(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByEmailOrPharmacistID", mock.Anything, "test@example.com", "ECZ123456").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "duplicate caught by pre-check",
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByEmailOrPharmacistID", mock.Anything, "test@example.com", "ECZ123456").Return(true, nil)
			},
			expectedError: ErrDuplicateIdentity,
		},
		{
			name: "duplicate caught by unique index",
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByEmailOrPharmacistID", mock.Anything, "test@example.com", "ECZ123456").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
					Return(&pgconn.PgError{Code: "23505", ConstraintName: "uni_users_email"})
			},
			expectedError: ErrDuplicateIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			uc := NewAuthUsecase(logrus.New(), mockRepo, testJWTService())
			result, err := uc.Register(context.Background(), testRegisterRequest())

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.NotEmpty(t, result.Token)
				assert.Equal(t, "ECZ123456", result.User.PharmacistID)
				assert.Equal(t, entity.RolePharmacist, result.User.Role)
				// Email is case-normalized before persisting
				assert.Equal(t, "test@example.com", result.User.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthUsecase_Register_HashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("ExistsByEmailOrPharmacistID", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	var created *entity.User
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	uc := NewAuthUsecase(logrus.New(), mockRepo, testJWTService())
	_, err := uc.Register(context.Background(), testRegisterRequest())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
}

func TestAuthUsecase_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	active := true
	inactive := false
	userID := uuid.New()

	activeUser := func() *entity.User {
		return &entity.User{
			ID:           userID,
			PharmacistID: "ECZ123456",
			Email:        "test@example.com",
			PasswordHash: string(hashed),
			Role:         entity.RolePharmacist,
			IsActive:     &active,
		}
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(activeUser(), nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "missing@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrongpassword",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(activeUser(), nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "inactive account with correct credentials",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				u := activeUser()
				u.IsActive = &inactive
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(u, nil)
			},
			expectedError: ErrAccountInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := testJWTService()
			uc := NewAuthUsecase(logrus.New(), mockRepo, jwtService)
			result, err := uc.Login(context.Background(), &dto.LoginRequest{Email: tt.email, Password: tt.password})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "test@example.com", result.User.Email)

				// The embedded role must match the stored role
				claims, err := jwtService.ValidateToken(result.Token)
				require.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, entity.RolePharmacist, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthUsecase_GetCurrentUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)

	uc := NewAuthUsecase(logrus.New(), mockRepo, testJWTService())
	_, err := uc.GetCurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
