package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	jwtutil "github.com/Dias221467/StudyTask_Manager/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSignUp_WithoutMailerVerifiesImmediately(t *testing.T) {
	users := newMemUserRepo()
	svc := NewAuthService(users, nil, testSecret, time.Hour, "http://localhost:8080")

	user, err := svc.SignUp(context.Background(), models.SignUpInput{Email: " Ann@Example.com ", Password: "secret1", FullName: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.True(t, user.IsVerified)
	assert.NotEqual(t, "secret1", user.HashedPassword)

	_, err = svc.SignUp(context.Background(), models.SignUpInput{Email: "ann@example.com", Password: "secret2", FullName: "Ann"})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestSignUp_Validation(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), nil, testSecret, time.Hour, "")

	_, err := svc.SignUp(context.Background(), models.SignUpInput{Email: "nope", Password: "secret1", FullName: "Ann"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Invalid email address"}, verr.Problems)
}

func TestSignUp_VerificationFlow(t *testing.T) {
	users := newMemUserRepo()
	mailer := &recordingMailer{}
	svc := NewAuthService(users, mailer, testSecret, time.Hour, "http://localhost:8080/")
	ctx := context.Background()

	user, err := svc.SignUp(ctx, models.SignUpInput{Email: "bob@example.com", Password: "secret1", FullName: "Bob"})
	require.NoError(t, err)
	assert.False(t, user.IsVerified)
	assert.Equal(t, "bob@example.com", mailer.to)
	assert.Contains(t, mailer.body, "http://localhost:8080/auth/verify?token="+user.VerifyToken)

	_, _, err = svc.SignIn(ctx, models.SignInInput{Email: "bob@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailNotVerified)

	assert.ErrorIs(t, svc.VerifyEmail(ctx, "wrong"), ErrInvalidToken)
	assert.ErrorIs(t, svc.VerifyEmail(ctx, ""), ErrInvalidToken)
	require.NoError(t, svc.VerifyEmail(ctx, user.VerifyToken))

	token, signedIn, err := svc.SignIn(ctx, models.SignInInput{Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, signedIn.ID)

	claims, err := jwtutil.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestSignUp_MailerFailureAllowsRetry(t *testing.T) {
	users := newMemUserRepo()
	mailer := &recordingMailer{err: errBoom}
	svc := NewAuthService(users, mailer, testSecret, time.Hour, "")
	input := models.SignUpInput{Email: "c@example.com", Password: "secret1", FullName: "C"}

	_, err := svc.SignUp(context.Background(), input)
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, users.users)

	mailer.err = nil
	user, err := svc.SignUp(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "c@example.com", user.Email)
	assert.Len(t, users.users, 1)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), nil, testSecret, time.Hour, "")
	ctx := context.Background()
	_, err := svc.SignUp(ctx, models.SignUpInput{Email: "d@example.com", Password: "secret1", FullName: "D"})
	require.NoError(t, err)

	_, _, err = svc.SignIn(ctx, models.SignInInput{Email: "d@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.SignIn(ctx, models.SignInInput{Email: "missing@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.SignIn(ctx, models.SignInInput{Email: "d@example.com"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, strings.Contains(verr.Error(), "Password is required"))
}

func TestGetCurrentUser(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), nil, testSecret, time.Hour, "")
	created, err := svc.SignUp(context.Background(), models.SignUpInput{Email: "e@example.com", Password: "secret1", FullName: "E"})
	require.NoError(t, err)

	user, err := svc.GetCurrentUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "e@example.com", user.Email)
}
