package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/news-aggregator-api/internal/models"
	"github.com/sbilibin2017/news-aggregator-api/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func(reader *services.MockUserReader, writer *services.MockUserWriter, jwt *services.MockJWTGenerator)
		wantToken string
		wantErr   error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				writer.EXPECT().Save(gomock.Any(), "alice", gomock.Any()).Return(userID, nil)
				jwt.EXPECT().Generate(gomock.Any(), userID).Return("token123", nil)
			},
			wantToken: "token123",
		},
		{
			name:      "empty username",
			username:  "",
			password:  "pass123",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter, jwt *services.MockJWTGenerator) {},
			wantErr:   services.ErrEmptyCredentials,
		},
		{
			name:      "empty password",
			username:  "alice",
			password:  "",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter, jwt *services.MockJWTGenerator) {},
			wantErr:   services.ErrEmptyCredentials,
		},
		{
			name:     "user already exists",
			username: "bob",
			password: "pass123",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(&models.UserDB{UserID: uuid.New()}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "reader error",
			username: "eve",
			password: "pass123",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "eve").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "writer error",
			username: "carol",
			password: "pass123",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "carol").Return(nil, nil)
				writer.EXPECT().Save(gomock.Any(), "carol", gomock.Any()).Return(uuid.Nil, errors.New("save error"))
			},
			wantErr: errors.New("save error"),
		},
		{
			name:     "jwt error",
			username: "dave",
			password: "pass123",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "dave").Return(nil, nil)
				writer.EXPECT().Save(gomock.Any(), "dave", gomock.Any()).Return(userID, nil)
				jwt.EXPECT().Generate(gomock.Any(), userID).Return("", errors.New("sign error"))
			},
			wantErr: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			tt.mockSetup(mockReader, mockWriter, mockJWT)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			token, err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name      string
		username  string
		loginPass string
		mockSetup func(reader *services.MockUserReader, jwt *services.MockJWTGenerator)
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").
					Return(&models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)}, nil)
				jwt.EXPECT().Generate(gomock.Any(), userID).Return("token123", nil)
			},
			wantToken: "token123",
		},
		{
			name:      "unknown username",
			username:  "ghost",
			loginPass: password,
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			username:  "alice",
			loginPass: "wrong",
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").
					Return(&models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)}, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			loginPass: password,
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			tt.mockSetup(mockReader, mockJWT)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller.
func TestAuthService_Login_EnumerationSafe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
	_, errUnknown := svc.Login(context.Background(), "ghost", "whatever")

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: string(hashed)}, nil)
	_, errWrongPass := svc.Login(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, errUnknown, services.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, services.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}
