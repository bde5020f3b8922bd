package user

import (
	"errors"

	"github.com/gpulens/gpulens/pkg/infra"
	"gorm.io/gorm"
)

type Repository interface {
	GetByEmail(email string) (*User, error)
	Create(user *User) (uint, error)
	UpdateAccessAndRole(email string, isActive bool, role string) error
	GetAll() ([]User, error)
}

type Users struct {
	db     *gorm.DB
	dbName string
}

func NewRepository(connection *infra.SQLConnection) (Repository, error) {
	if connection == nil {
		return nil, errors.New("connection cannot be nil")
	}

	session, err := connection.GetConn()
	if err != nil {
		return nil, err
	}
	meta, err := connection.GetMeta()
	if err != nil {
		return nil, err
	}
	dbName := meta["db_name"].(string)

	return &Users{
		db:     session.(*gorm.DB),
		dbName: dbName,
	}, nil
}

// GetByEmail retrieves a user by their email.
func (u *Users) GetByEmail(email string) (*User, error) {
	var user User
	result := u.db.Where("email = ?", email).First(&user)
	return &user, result.Error
}

// Create adds a new user.
func (u *Users) Create(user *User) (uint, error) {
	result := u.db.Create(user)
	if result.Error != nil {
		return 0, result.Error
	}
	return user.ID, nil
}

// GetAll retrieves all users.
func (u *Users) GetAll() ([]User, error) {
	var users []User
	result := u.db.Find(&users)
	return users, result.Error
}

func (u *Users) UpdateAccessAndRole(email string, isActive bool, role string) error {
	var user User
	request := u.db.Where("email = ?", email).First(&user)
	if request.Error != nil {
		return request.Error
	}
	var result *gorm.DB
	if user.Role != role {
		result = u.db.Model(&User{}).Where("email = ?", email).Update("is_active", isActive).Update("role", role)
	} else {
		result = u.db.Model(&User{}).Where("email = ?", email).Update("is_active", isActive)
	}
	return result.Error
}
