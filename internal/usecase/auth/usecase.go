package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"insurance-backend/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Usecase struct {
	users    user.Repository
	secret   []byte
	tokenTTL time.Duration
}

func NewUsecase(users user.Repository, secret string, tokenTTL time.Duration) *Usecase {
	return &Usecase{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// Claims carried in issued tokens. The middleware puts UserID and Role into
// the request context so handlers never reach into ambient auth state.
type Claims struct {
	UserID uint64    `json:"user_id"`
	Role   user.Role `json:"role"`
	jwt.RegisteredClaims
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	log.Printf("auth: registering %s", in.Email)

	if _, err := u.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, user.ErrAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12)
	if err != nil {
		return nil, err
	}

	usr := &user.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Phone:    in.Phone,
		Address:  in.Address,
		Role:     user.RoleUser,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// Login checks credentials and returns a signed token. Unknown email and bad
// password are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, email, password string) (string, error) {
	log.Printf("auth: login attempt for %s", email)

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", user.ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return "", user.ErrInvalidCredentials
	}
	return u.IssueToken(usr)
}

func (u *Usecase) IssueToken(usr *user.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: usr.ID,
		Role:   usr.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usr.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}

// ParseToken verifies signature and expiry and returns the embedded claims.
func ParseToken(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
