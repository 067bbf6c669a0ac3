package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/ecodesk/greenroi/internal/pkg/logger"
	"github.com/ecodesk/greenroi/internal/pkg/session"
	"github.com/ecodesk/greenroi/internal/pkg/store"
	"github.com/ecodesk/greenroi/internal/pkg/utils"
)

type Service struct {
	store    store.UserStore
	sessions session.Store
}

func NewService(store store.UserStore, sessions session.Store) *Service {
	return &Service{store: store, sessions: sessions}
}

func (svc *Service) Login(ctx context.Context, request *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := svc.store.GetUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("store.GetUserByUsername: %w", err)
	}

	if err := user.UserPassword.Validate(request.Password); err != nil {
		return nil, err
	}

	sess, err := svc.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("sessions.Create: %w", err)
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{
		UserID:    user.ID,
		SessionID: sess.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("utils.GenerateAuthToken: %w", err)
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)

	return &domain.LoginResponse{User: toUserResponse(user), AuthToken: authToken}, nil
}

func (svc *Service) Logout(ctx context.Context, rawToken string) error {
	token, err := utils.ParseAuthToken(rawToken)
	if err != nil {
		return err
	}

	return svc.sessions.Delete(ctx, token.SessionID)
}

// Authenticate resolves a raw cookie token to the owning user id. The
// signed token must reference a live session, so logout revokes it.
func (svc *Service) Authenticate(ctx context.Context, rawToken string) (int64, error) {
	token, err := utils.ParseAuthToken(rawToken)
	if err != nil {
		return 0, err
	}

	sess, err := svc.sessions.Get(ctx, token.SessionID)
	if err != nil {
		return 0, err
	}
	if sess.UserID != token.UserID {
		return 0, constants.ErrUnauthorized
	}

	return sess.UserID, nil
}

func (svc *Service) CurrentUser(ctx context.Context, userID int64) (*domain.UserResponse, error) {
	user, err := svc.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("store.GetUserByID: %w", err)
	}
	return toUserResponse(user), nil
}

// EnsureDemoUser seeds the demo account on first start.
func (svc *Service) EnsureDemoUser(ctx context.Context) error {
	const username, password = "demo", "demo123"

	if _, err := svc.store.GetUserByUsername(ctx, username); !errors.Is(err, constants.ErrDBNotFound) {
		return err
	}

	user := &domain.User{Username: username}
	if err := user.UserPassword.Init(password); err != nil {
		return err
	}

	if err := svc.store.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("store.CreateUser: %w", err)
	}

	logger.Infof(ctx, "seeded demo user [%s]", username)
	return nil
}

func toUserResponse(user *domain.User) *domain.UserResponse {
	return &domain.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
