package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/couleurbar/theke-system/internal/core/domain"
	"github.com/couleurbar/theke-system/internal/core/ports"
)

// AuthService implements member login and token minting. Member accounts
// themselves are created by admins, not self-registered.
type AuthService struct {
	members   ports.MemberRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(members ports.MemberRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{members: members, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login verifies email and password and returns a signed token plus the
// member. Unknown emails and wrong passwords are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Member, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	member, err := s.members.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(member)
	if err != nil {
		return "", nil, err
	}

	return token, member, nil
}

func (s *AuthService) generateToken(member *domain.Member) (string, error) {
	claims := jwt.MapClaims{
		"member_id":   member.ID,
		"couleurname": member.Couleurname,
		"role":        member.Role,
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
