package pricebook

import (
	"errors"

	"github.com/gpulens/gpulens/pkg/infra"
	"gorm.io/gorm"
)

type Repository interface {
	GetAll() ([]PriceBook, error)
	GetByName(name string) (*PriceBook, error)
	Create(book *PriceBook) (uint, error)
	Update(book *PriceBook) error
	Delete(name string) error
}

type Store struct {
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

	return &Store{
		db:     session.(*gorm.DB),
		dbName: dbName,
	}, nil
}

// GetAll retrieves every saved price book.
func (s *Store) GetAll() ([]PriceBook, error) {
	var books []PriceBook
	result := s.db.Find(&books)
	return books, result.Error
}

// GetByName retrieves a price book by its unique name.
func (s *Store) GetByName(name string) (*PriceBook, error) {
	var book PriceBook
	result := s.db.Where("name = ?", name).First(&book)
	return &book, result.Error
}

// Create adds a new price book.
func (s *Store) Create(book *PriceBook) (uint, error) {
	result := s.db.Create(book)
	if result.Error != nil {
		return 0, result.Error
	}
	return book.ID, nil
}

// Update updates the rates of an existing price book.
func (s *Store) Update(book *PriceBook) error {
	result := s.db.Model(book).Where("name = ?", book.Name).Updates(book)
	return result.Error
}

// Delete removes a price book by name.
func (s *Store) Delete(name string) error {
	result := s.db.Where("name = ?", name).Delete(&PriceBook{})
	return result.Error
}
