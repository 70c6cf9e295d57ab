package catalog

import (
	"errors"
	"fmt"

	"carta-backend/internal/models"

	"gorm.io/gorm"
)

// maxTreeDepth caps tree assembly. The schema cannot express a cycle check,
// so a corrupted parent chain fails here instead of recursing forever.
const maxTreeDepth = 16

// ProductStore handles products and assembles their trees: a combo points
// at child products, each child carries its own children and complement
// groups, to arbitrary depth.
type ProductStore struct {
	db              *gorm.DB
	complementTypes *ComplementTypeStore
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{
		db:              db,
		complementTypes: NewComplementTypeStore(db),
	}
}

type CreateProductParams struct {
	Name            string
	Description     string
	Price           int64
	Content         *string
	ImageURL        *string
	ParentProductID *uint
	Type            string
}

type UpdateProductParams struct {
	Name            *string
	Description     *string
	Price           *int64
	Content         *string
	ImageURL        *string
	ParentProductID *uint
	Type            *string
}

// List returns the workspace's root products, shallow: children and
// complement groups are not hydrated for listing views.
func (s *ProductStore) List(workspaceID uint) ([]ProductTree, error) {
	var rows []models.Product
	err := s.db.
		Where("workspace_id = ? AND parent_product_id IS NULL", workspaceID).
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]ProductTree, 0, len(rows))
	for _, p := range rows {
		products = append(products, newProductTree(p))
	}
	return products, nil
}

// Fetch returns the full tree rooted at productID. Only root products are
// fetchable; a child id or a row from another workspace is NotFound.
func (s *ProductStore) Fetch(workspaceID, productID uint) (*ProductTree, error) {
	var row models.Product
	err := s.db.
		Where("id = ? AND workspace_id = ? AND parent_product_id IS NULL", productID, workspaceID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch product: %w", err)
	}

	return s.assemble(row, 0)
}

// Create inserts a product and returns its hydrated, initially childless
// tree node. A parent, when given, must already exist in the workspace.
func (s *ProductStore) Create(workspaceID uint, params CreateProductParams) (*ProductTree, error) {
	if params.ParentProductID != nil {
		if err := s.ensureInWorkspace(workspaceID, *params.ParentProductID); err != nil {
			return nil, err
		}
	}

	row := models.Product{
		WorkspaceID:     workspaceID,
		ParentProductID: params.ParentProductID,
		Name:            params.Name,
		Description:     params.Description,
		Price:           params.Price,
		Content:         params.Content,
		ImageURL:        params.ImageURL,
		Type:            models.SanitizeProductType(params.Type),
	}

	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return s.assemble(row, 0)
}

// Update applies a partial patch scoped to workspace+id and returns the
// refreshed tree of the patched node.
func (s *ProductStore) Update(workspaceID, productID uint, params UpdateProductParams) (*ProductTree, error) {
	var row models.Product
	err := s.db.
		Where("id = ? AND workspace_id = ?", productID, workspaceID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch product: %w", err)
	}

	if params.ParentProductID != nil {
		if *params.ParentProductID == productID {
			return nil, ErrSelfParent
		}
		if err := s.ensureInWorkspace(workspaceID, *params.ParentProductID); err != nil {
			return nil, err
		}
		row.ParentProductID = params.ParentProductID
	}

	if params.Name != nil {
		row.Name = *params.Name
	}
	if params.Description != nil {
		row.Description = *params.Description
	}
	if params.Price != nil {
		row.Price = *params.Price
	}
	if params.Content != nil {
		row.Content = params.Content
	}
	if params.ImageURL != nil {
		row.ImageURL = params.ImageURL
	}
	if params.Type != nil {
		row.Type = models.SanitizeProductType(*params.Type)
	}

	if err := s.db.Save(&row).Error; err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return s.assemble(row, 0)
}

// AddComplementType creates a complement group and links it to the product
// as one transaction, then returns the product's refreshed tree. Without
// the transaction a failed link would leave an orphaned group behind.
func (s *ProductStore) AddComplementType(workspaceID, productID uint, params CreateComplementTypeParams) (*ProductTree, error) {
	var row models.Product
	err := s.db.
		Where("id = ? AND workspace_id = ?", productID, workspaceID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch product: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		group := models.ProductComplementType{
			WorkspaceID:   workspaceID,
			Name:          params.Name,
			Required:      params.Required,
			MaxSelectable: params.MaxSelectable,
		}
		if err := tx.Create(&group).Error; err != nil {
			return fmt.Errorf("create complement type: %w", err)
		}

		link := models.ProductComplementTypeLink{
			ProductID:               productID,
			ProductComplementTypeID: group.ID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("link complement type: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.assemble(row, 0)
}

// assemble builds the tree below one product row. The current node id is
// threaded explicitly through the recursion; nothing on the store mutates
// per call.
func (s *ProductStore) assemble(row models.Product, depth int) (*ProductTree, error) {
	if depth > maxTreeDepth {
		return nil, ErrTreeDepth
	}

	node := newProductTree(row)

	// Count probe first so leaf nodes skip the hydration queries.
	var linkCount int64
	err := s.db.Model(&models.ProductComplementTypeLink{}).
		Where("product_id = ?", row.ID).
		Count(&linkCount).Error
	if err != nil {
		return nil, fmt.Errorf("count complement type links: %w", err)
	}
	if linkCount > 0 {
		types, err := s.complementTypes.Index(row.ID)
		if err != nil {
			return nil, err
		}
		node.ProductComplementTypes = types
	}

	var children []models.Product
	err = s.db.
		Where("workspace_id = ? AND parent_product_id = ?", row.WorkspaceID, row.ID).
		Order("id asc").
		Find(&children).Error
	if err != nil {
		return nil, fmt.Errorf("list child products: %w", err)
	}

	for _, child := range children {
		sub, err := s.assemble(child, depth+1)
		if err != nil {
			return nil, err
		}
		node.Products = append(node.Products, *sub)
	}

	return &node, nil
}

func (s *ProductStore) ensureInWorkspace(workspaceID, productID uint) error {
	var count int64
	err := s.db.Model(&models.Product{}).
		Where("id = ? AND workspace_id = ?", productID, workspaceID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("check parent product: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
