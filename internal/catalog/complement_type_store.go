package catalog

import (
	"errors"
	"fmt"

	"carta-backend/internal/models"

	"gorm.io/gorm"
)

// ComplementTypeStore handles complement groups and their attachment to
// products. Groups belong to a workspace, not to a single product.
type ComplementTypeStore struct {
	db          *gorm.DB
	complements *ComplementStore
}

func NewComplementTypeStore(db *gorm.DB) *ComplementTypeStore {
	return &ComplementTypeStore{
		db:          db,
		complements: NewComplementStore(db),
	}
}

type CreateComplementTypeParams struct {
	Name          string
	Required      bool
	MaxSelectable int
}

type UpdateComplementTypeParams struct {
	Name          *string
	Required      *bool
	MaxSelectable *int
}

// Index returns every group linked to the product, each hydrated with its
// complements, in link-insertion order.
func (s *ComplementTypeStore) Index(productID uint) ([]ComplementTypeView, error) {
	var links []models.ProductComplementTypeLink
	err := s.db.
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("list complement type links: %w", err)
	}

	views := make([]ComplementTypeView, 0, len(links))
	for _, link := range links {
		var row models.ProductComplementType
		if err := s.db.First(&row, "id = ?", link.ProductComplementTypeID).Error; err != nil {
			return nil, fmt.Errorf("fetch complement type %d: %w", link.ProductComplementTypeID, err)
		}

		view, err := s.hydrate(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ComplementTypeStore) Fetch(workspaceID, id uint) (*ComplementTypeView, error) {
	var row models.ProductComplementType
	err := s.db.
		Where("id = ? AND workspace_id = ?", id, workspaceID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch complement type: %w", err)
	}

	view, err := s.hydrate(row)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *ComplementTypeStore) Create(workspaceID uint, params CreateComplementTypeParams) (*ComplementTypeView, error) {
	row := models.ProductComplementType{
		WorkspaceID:   workspaceID,
		Name:          params.Name,
		Required:      params.Required,
		MaxSelectable: params.MaxSelectable,
	}

	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create complement type: %w", err)
	}

	view := newComplementTypeView(row, nil)
	return &view, nil
}

func (s *ComplementTypeStore) Update(workspaceID, id uint, params UpdateComplementTypeParams) (*ComplementTypeView, error) {
	var row models.ProductComplementType
	err := s.db.
		Where("id = ? AND workspace_id = ?", id, workspaceID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch complement type: %w", err)
	}

	if params.Name != nil {
		row.Name = *params.Name
	}
	if params.Required != nil {
		row.Required = *params.Required
	}
	if params.MaxSelectable != nil {
		row.MaxSelectable = *params.MaxSelectable
	}

	if err := s.db.Save(&row).Error; err != nil {
		return nil, fmt.Errorf("update complement type: %w", err)
	}

	view, err := s.hydrate(row)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *ComplementTypeStore) hydrate(row models.ProductComplementType) (ComplementTypeView, error) {
	complements, err := s.complements.Index(row.ID)
	if err != nil {
		return ComplementTypeView{}, err
	}
	return newComplementTypeView(row, complements), nil
}
