package identity

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/domain/identity"
	"github.com/vyapar/backend/internal/infrastructure/auth"
)

// AuthService handles registration, login and the security-question reset flow
type AuthService struct {
	userRepo   identity.UserRepository
	hasher     identity.PasswordHasher
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	hasher identity.PasswordHasher,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new business account
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	email := identity.NormalizeEmail(input.Email)
	if err := identity.ValidateEmail(email); err != nil {
		return err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		s.logger.Info("Registration for existing email", zap.String("email", email))
		return identity.ErrUserAlreadyExists
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	answerHash, err := s.hasher.Hash(input.SecurityAnswer)
	if err != nil {
		return fmt.Errorf("hash security answer: %w", err)
	}

	user, err := identity.NewUser(email, passwordHash, input.SecurityQuestion, answerHash, input.BusinessInfo.toDomain())
	if err != nil {
		return err
	}

	// A concurrent registration can still win the race; the unique index
	// turns that into ErrUserAlreadyExists.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)
	return nil
}

// Login checks credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := identity.NormalizeEmail(input.Email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			s.logger.Warn("Login for unknown email", zap.String("email", email))
			return nil, identity.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, identity.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &LoginResult{
		Token:        token,
		BusinessInfo: businessInfoFromDomain(user.BusinessInfo),
	}, nil
}

// GetSecurityQuestion returns the question stored for an email
func (s *AuthService) GetSecurityQuestion(ctx context.Context, input SecurityQuestionInput) (*SecurityQuestionResult, error) {
	user, err := s.findUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	return &SecurityQuestionResult{SecurityQuestion: user.SecurityQuestion}, nil
}

// VerifyAnswer checks the security answer and issues a reset token
func (s *AuthService) VerifyAnswer(ctx context.Context, input VerifyAnswerInput) (*VerifyAnswerResult, error) {
	user, err := s.findUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Compare(user.SecurityAnswerHash, input.SecurityAnswer) {
		s.logger.Warn("Incorrect security answer", zap.String("user_id", user.ID.String()))
		return nil, identity.ErrIncorrectAnswer
	}

	token, _, err := s.jwtService.GenerateResetToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate reset token: %w", err)
	}
	return &VerifyAnswerResult{ResetToken: token}, nil
}

// ResetPassword replaces the password of the user named by a reset token
func (s *AuthService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if input.ResetToken == "" {
		return identity.ErrResetTokenMissing
	}

	claims, err := s.jwtService.ValidateResetToken(input.ResetToken)
	if err != nil {
		s.logger.Warn("Reset token rejected", zap.Error(err))
		return identity.ErrResetTokenInvalid
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return identity.ErrResetTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("find user: %w", err)
	}

	passwordHash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := user.ChangePassword(passwordHash); err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.logger.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *AuthService) findUserByEmail(ctx context.Context, email string) (*identity.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, identity.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
