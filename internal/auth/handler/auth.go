package handler

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gpulens/gpulens/internal/configs"
	"github.com/gpulens/gpulens/internal/repositories/sql/user"
	"github.com/gpulens/gpulens/pkg/infra"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator owns dashboard accounts and bearer tokens.
type Authenticator interface {
	Register(request *User) error
	Login(request *Login) (*Token, error)
	Validate(token string) (*Claims, error)
	Users() ([]UserSummary, error)
	UpdateUserAccessAndRole(email string, isActive bool, role string) error
}

var (
	authenticator Authenticator
	once          sync.Once
)

type authHandler struct {
	users  user.Repository
	secret []byte
	expiry time.Duration
}

// InitAuthenticator wires the auth handler to the user repository. Expects
// the SQL connectors to be initialized.
func InitAuthenticator(config configs.Configs) Authenticator {
	if authenticator == nil {
		once.Do(func() {
			connection, err := infra.SQL.GetConnection()
			if err != nil {
				log.Error().Err(err).Msg("Error in getting SQL connection for auth")
				return
			}
			sqlConn := connection.(*infra.SQLConnection)
			users, err := user.NewRepository(sqlConn)
			if err != nil {
				log.Error().Err(err).Msg("Error in creating user repository")
				return
			}
			authenticator = &authHandler{
				users:  users,
				secret: []byte(config.JwtSecret),
				expiry: time.Duration(config.JwtExpiryHours) * time.Hour,
			}
		})
	}
	return authenticator
}

// GetAuthenticator returns the initialized handler, or nil when auth is
// disabled (no database configured).
func GetAuthenticator() Authenticator {
	return authenticator
}

func (a *authHandler) Register(request *User) error {
	if len(request.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return err
	}

	record := user.User{
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		PasswordHash: string(hashedPassword),
		Role:         "user", // By default onboard everyone with role user
	}
	if _, err = a.users.Create(&record); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("Failed to create user")
		return errors.New("user already exists or could not be created")
	}
	return nil
}

func (a *authHandler) Login(request *Login) (*Token, error) {
	record, err := a.users.GetByEmail(request.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}
	if !record.IsActive {
		return nil, errors.New("user is not active")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(request.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": record.Email,
		"role":  record.Role,
		"exp":   time.Now().Add(a.expiry).Unix(),
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign token")
		return nil, err
	}
	return &Token{Token: signed, Email: record.Email, Role: record.Role}, nil
}

func (a *authHandler) Users() ([]UserSummary, error) {
	records, err := a.users.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		return nil, err
	}
	summaries := make([]UserSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, UserSummary{
			FirstName: record.FirstName,
			LastName:  record.LastName,
			Email:     record.Email,
			IsActive:  record.IsActive,
			Role:      record.Role,
		})
	}
	return summaries, nil
}

func (a *authHandler) UpdateUserAccessAndRole(email string, isActive bool, role string) error {
	if err := a.users.UpdateAccessAndRole(email, isActive, role); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to update user access")
		return err
	}
	return nil
}

func (a *authHandler) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return &Claims{Email: email, Role: role}, nil
}
