package domain

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/labstack/gommon/random"
)

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	UserPassword
	CreatedAt time.Time `db:"created_at"`
}

type UserPassword struct {
	Hash string `db:"password_hash"`
	Salt string `db:"password_salt"`
}

func (p *UserPassword) Init(plain string) error {
	p.Salt = random.String(16)
	p.Hash = hashPassword(plain, p.Salt)
	return nil
}

func (p *UserPassword) Validate(plain string) error {
	candidate := hashPassword(plain, p.Salt)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(p.Hash)) != 1 {
		return constants.ErrInvalidCredentials
	}
	return nil
}

func hashPassword(plain, salt string) string {
	sum := sha256.Sum256([]byte(salt + plain))
	return hex.EncodeToString(sum[:])
}
