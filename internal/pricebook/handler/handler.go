package handler

import (
	"errors"
	"sync"

	"github.com/gpulens/gpulens/internal/repositories/sql/pricebook"
	"github.com/gpulens/gpulens/pkg/infra"
	"github.com/rs/zerolog/log"
)

// Manager owns saved vendor price books.
type Manager interface {
	List() ([]Book, error)
	Get(name string) (*Book, error)
	Save(book *Book, createdBy string) error
	Delete(name string) error
	// Rates flattens a saved book into vendor -> $/GPU-hour for ranking,
	// along with the book's fallback rate for unlisted hardware.
	Rates(name string) (map[string]float64, float64, error)
}

// Book is the API shape of a saved price book.
type Book struct {
	Name          string  `json:"name" binding:"required"`
	NvidiaHourly  float64 `json:"nvidiaHourly"`
	HuaweiHourly  float64 `json:"huaweiHourly"`
	AmdHourly     float64 `json:"amdHourly"`
	DefaultHourly float64 `json:"defaultHourly"`
}

var (
	manager Manager
	once    sync.Once
)

type bookHandler struct {
	books pricebook.Repository
}

// InitManager wires the price-book handler to its repository. Expects the
// SQL connectors to be initialized.
func InitManager() Manager {
	if manager == nil {
		once.Do(func() {
			connection, err := infra.SQL.GetConnection()
			if err != nil {
				log.Warn().Msg("Price book persistence disabled, no SQL connection")
				return
			}
			sqlConn := connection.(*infra.SQLConnection)
			books, err := pricebook.NewRepository(sqlConn)
			if err != nil {
				log.Error().Err(err).Msg("Error in creating price book repository")
				return
			}
			manager = &bookHandler{books: books}
		})
	}
	return manager
}

// GetManager returns the initialized handler, or nil when persistence is
// disabled (no database configured).
func GetManager() Manager {
	return manager
}

func (h *bookHandler) List() ([]Book, error) {
	records, err := h.books.GetAll()
	if err != nil {
		return nil, err
	}
	books := make([]Book, 0, len(records))
	for _, record := range records {
		books = append(books, fromTable(&record))
	}
	return books, nil
}

func (h *bookHandler) Get(name string) (*Book, error) {
	record, err := h.books.GetByName(name)
	if err != nil {
		return nil, err
	}
	book := fromTable(record)
	return &book, nil
}

func (h *bookHandler) Save(book *Book, createdBy string) error {
	if book.Name == "" {
		return errors.New("price book name is required")
	}
	record := pricebook.PriceBook{
		Name:          book.Name,
		NvidiaHourly:  book.NvidiaHourly,
		HuaweiHourly:  book.HuaweiHourly,
		AmdHourly:     book.AmdHourly,
		DefaultHourly: book.DefaultHourly,
		CreatedBy:     createdBy,
	}
	if _, err := h.books.GetByName(book.Name); err == nil {
		return h.books.Update(&record)
	}
	_, err := h.books.Create(&record)
	return err
}

func (h *bookHandler) Delete(name string) error {
	return h.books.Delete(name)
}

func (h *bookHandler) Rates(name string) (map[string]float64, float64, error) {
	book, err := h.Get(name)
	if err != nil {
		return nil, 0, err
	}
	rates := map[string]float64{
		"nvidia": book.NvidiaHourly,
		"huawei": book.HuaweiHourly,
		"amd":    book.AmdHourly,
	}
	return rates, book.DefaultHourly, nil
}

func fromTable(record *pricebook.PriceBook) Book {
	return Book{
		Name:          record.Name,
		NvidiaHourly:  record.NvidiaHourly,
		HuaweiHourly:  record.HuaweiHourly,
		AmdHourly:     record.AmdHourly,
		DefaultHourly: record.DefaultHourly,
	}
}
