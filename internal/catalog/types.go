package catalog

import (
	"time"

	"carta-backend/internal/models"
)

// ComplementView is one selectable option inside a complement group.
type ComplementView struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Increment  bool   `json:"increment"`
	IsDisabled bool   `json:"isDisabled"`
	Price      int64  `json:"price"`
}

// ComplementTypeView is a complement group hydrated with its options.
type ComplementTypeView struct {
	ID                 uint             `json:"id"`
	Name               string           `json:"name"`
	Required           bool             `json:"required"`
	MaxSelectable      int              `json:"maxSelectable"`
	CreatedAt          string           `json:"createdAt"`
	UpdatedAt          string           `json:"updatedAt"`
	ProductComplements []ComplementView `json:"productComplements"`
}

// ProductTree is one product node with its children and complement groups.
// Products and ProductComplementTypes are always present, empty when the
// node has none.
type ProductTree struct {
	ID                     uint                 `json:"id"`
	WorkspaceID            uint                 `json:"workspaceId"`
	Name                   string               `json:"name"`
	Description            string               `json:"description"`
	Price                  int64                `json:"price"`
	Content                *string              `json:"content,omitempty"`
	ImageURL               *string              `json:"imageUrl,omitempty"`
	ParentProductID        *uint                `json:"parentProductId,omitempty"`
	Type                   models.ProductType   `json:"type"`
	CreatedAt              string               `json:"createdAt"`
	UpdatedAt              string               `json:"updatedAt"`
	Products               []ProductTree        `json:"products"`
	ProductComplementTypes []ComplementTypeView `json:"productComplementTypes"`
}

func newComplementView(c models.ProductComplement) ComplementView {
	return ComplementView{
		ID:         c.ID,
		Name:       c.Name,
		Increment:  c.Increment,
		IsDisabled: c.IsDisabled,
		Price:      c.Price,
	}
}

func newComplementTypeView(t models.ProductComplementType, complements []ComplementView) ComplementTypeView {
	if complements == nil {
		complements = []ComplementView{}
	}
	return ComplementTypeView{
		ID:                 t.ID,
		Name:               t.Name,
		Required:           t.Required,
		MaxSelectable:      t.MaxSelectable,
		CreatedAt:          t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          t.UpdatedAt.Format(time.RFC3339),
		ProductComplements: complements,
	}
}

func newProductTree(p models.Product) ProductTree {
	return ProductTree{
		ID:                     p.ID,
		WorkspaceID:            p.WorkspaceID,
		Name:                   p.Name,
		Description:            p.Description,
		Price:                  p.Price,
		Content:                p.Content,
		ImageURL:               p.ImageURL,
		ParentProductID:        p.ParentProductID,
		Type:                   p.Type,
		CreatedAt:              p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              p.UpdatedAt.Format(time.RFC3339),
		Products:               []ProductTree{},
		ProductComplementTypes: []ComplementTypeView{},
	}
}
