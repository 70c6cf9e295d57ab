package catalog

import (
	"errors"
	"fmt"

	"carta-backend/internal/models"

	"gorm.io/gorm"
)

// ComplementStore handles the individual options inside a complement group.
type ComplementStore struct {
	db *gorm.DB
}

func NewComplementStore(db *gorm.DB) *ComplementStore {
	return &ComplementStore{db: db}
}

type CreateComplementParams struct {
	Name       string
	IsDisabled bool
	Price      int64
}

type UpdateComplementParams struct {
	Name       *string
	IsDisabled *bool
	Price      *int64
}

// Index lists the complements of a group in insertion order.
func (s *ComplementStore) Index(complementTypeID uint) ([]ComplementView, error) {
	var rows []models.ProductComplement
	err := s.db.
		Where("product_complement_type_id = ?", complementTypeID).
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list complements: %w", err)
	}

	views := make([]ComplementView, 0, len(rows))
	for _, c := range rows {
		views = append(views, newComplementView(c))
	}
	return views, nil
}

func (s *ComplementStore) Fetch(id uint) (*ComplementView, error) {
	var row models.ProductComplement
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch complement: %w", err)
	}

	view := newComplementView(row)
	return &view, nil
}

// Create persists a new complement. Increment is derived from the price,
// never taken from the caller.
func (s *ComplementStore) Create(complementTypeID uint, params CreateComplementParams) (*ComplementView, error) {
	row := models.ProductComplement{
		ProductComplementTypeID: complementTypeID,
		Name:                    params.Name,
		Increment:               params.Price > 0,
		IsDisabled:              params.IsDisabled,
		Price:                   params.Price,
	}

	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create complement: %w", err)
	}

	view := newComplementView(row)
	return &view, nil
}

// Update patches a complement. The row must belong to the given group, so
// a caller holding a valid group in one workspace cannot reach complements
// hanging off another. Increment is recomputed only when the price changes;
// untouched fields keep their stored values.
func (s *ComplementStore) Update(complementTypeID, id uint, params UpdateComplementParams) (*ComplementView, error) {
	var row models.ProductComplement
	if err := s.db.Where("id = ? AND product_complement_type_id = ?", id, complementTypeID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch complement: %w", err)
	}

	if params.Name != nil {
		row.Name = *params.Name
	}
	if params.IsDisabled != nil {
		row.IsDisabled = *params.IsDisabled
	}
	if params.Price != nil {
		row.Price = *params.Price
		row.Increment = *params.Price > 0
	}

	if err := s.db.Save(&row).Error; err != nil {
		return nil, fmt.Errorf("update complement: %w", err)
	}

	view := newComplementView(row)
	return &view, nil
}
