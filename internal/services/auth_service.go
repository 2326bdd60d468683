package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	"github.com/Dias221467/StudyTask_Manager/internal/repository"
	"github.com/Dias221467/StudyTask_Manager/pkg/email"
	jwtutil "github.com/Dias221467/StudyTask_Manager/pkg/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuthService handles accounts: sign up, email verification and sign in.
type AuthService struct {
	repo        repository.UserRepository
	mailer      email.Sender
	jwtSecret   string
	tokenExpiry time.Duration
	baseURL     string
}

// NewAuthService creates a new AuthService. A nil mailer disables the
// verification email and new accounts are verified straight away.
func NewAuthService(repo repository.UserRepository, mailer email.Sender, jwtSecret string, tokenExpiry time.Duration, baseURL string) *AuthService {
	return &AuthService{
		repo:        repo,
		mailer:      mailer,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// SignUp registers a new user after hashing their password.
func (s *AuthService) SignUp(ctx context.Context, input models.SignUpInput) (*models.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := models.ValidateSignUp(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		logrus.WithField("email", input.Email).Warn("Email already in use")
		return nil, ErrEmailInUse
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          input.Email,
		FullName:       strings.TrimSpace(input.FullName),
		HashedPassword: string(hashedPwd),
		IsVerified:     s.mailer == nil,
	}
	if s.mailer != nil {
		user.VerifyToken = uuid.NewString()
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		logrus.WithError(err).Error("User registration failed")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if s.mailer != nil {
		link := fmt.Sprintf("%s/auth/verify?token=%s", s.baseURL, created.VerifyToken)
		body := fmt.Sprintf("Welcome to StudyTask Manager!\n\nPlease verify your email by clicking the link below:\n%s", link)
		if err := s.mailer.SendEmail(created.Email, "Email Verification", body); err != nil {
			logrus.WithError(err).Error("Failed to send verification email")
			// Unverifiable account; remove it so the email can sign up again.
			if delErr := s.repo.Delete(ctx, created.ID); delErr != nil {
				logrus.WithError(delErr).WithField("userID", created.ID).Error("Failed to remove unverifiable user")
			}
			return nil, fmt.Errorf("failed to send verification email: %w", err)
		}
		logrus.Infof("Sent verification email to %s", created.Email)
	}

	logrus.WithField("userID", created.ID).Info("User registered successfully")
	return created, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	user, err := s.repo.FindByVerifyToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidToken
	}
	if err != nil {
		return fmt.Errorf("failed to look up token: %w", err)
	}

	if err := s.repo.MarkVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to update user verification status: %w", err)
	}
	return nil
}

// SignIn checks the credentials and returns a signed token with the user.
func (s *AuthService) SignIn(ctx context.Context, input models.SignInInput) (string, *models.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := models.ValidateSignIn(input); err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrNotFound) {
		logrus.WithField("email", input.Email).Warn("User not found")
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		logrus.WithField("email", input.Email).Warn("Invalid credentials")
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		logrus.WithField("email", input.Email).Warn("Attempt to login with unverified email")
		return "", nil, ErrEmailNotVerified
	}

	token, err := jwtutil.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return "", nil, err
	}

	logrus.WithField("userID", user.ID).Info("User authenticated successfully")
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
