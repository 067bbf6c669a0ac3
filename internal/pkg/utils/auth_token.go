package utils

import (
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"
)

// AuthTokenWrapper is the signed payload of the auth cookie. SessionID
// references a row in the session store, so a token is only as alive as
// its session.
type AuthTokenWrapper struct {
	UserID    int64  `json:"user_id"`
	SessionID string `json:"session_id"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	return token.SignedString(secret())
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	wrapper := &AuthTokenWrapper{}
	token, err := jwt.ParseWithClaims(raw, wrapper, func(*jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}
	return wrapper, nil
}

func secret() []byte {
	return []byte(viper.GetString(constants.ViperSecretKey))
}
