package main

import (
	"log"

	"carta-backend/internal/config"
	"carta-backend/internal/database"
	"carta-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a demo workspace with the sample menu used by the frontend.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := seed(db); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed completed.")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		hash, err := bcrypt.GenerateFromPassword([]byte("112233"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Email:        "admin@correo.com",
			PasswordHash: string(hash),
			FirstName:    "Admin",
			LastName:     "",
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		ws := models.Workspace{
			Name:    "Plaza Victoria",
			Address: "Lorem ipsun dolor sit ammet.",
		}
		if err := tx.Create(&ws).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.UserWorkspace{UserID: user.ID, WorkspaceID: ws.ID}).Error; err != nil {
			return err
		}

		vegetables, err := seedComplementType(tx, ws.ID, "Vegetales", true, 3, []seedComplement{
			{"Lechuga", 0}, {"Tomate", 0}, {"Pepinillos", 0}, {"Maíz", 400},
		})
		if err != nil {
			return err
		}
		proteins, err := seedComplementType(tx, ws.ID, "Carnes", true, 1, []seedComplement{
			{"Carne 120gr", 0}, {"Carne 250gr", 700}, {"Pollo apanado", 0},
		})
		if err != nil {
			return err
		}
		sausages, err := seedComplementType(tx, ws.ID, "Embutidos", false, models.UnlimitedSelectable, []seedComplement{
			{"Jamón", 300}, {"Queso", 300}, {"Tocino", 400},
		})
		if err != nil {
			return err
		}
		sauces, err := seedComplementType(tx, ws.ID, "Salsas", false, 3, []seedComplement{
			{"Ketchup", 0}, {"Mostaza", 0}, {"Mayonesa", 0},
		})
		if err != nil {
			return err
		}

		imageURL := "https://encrypted-tbn0.gstatic.com/images?q=tbn%3AANd9GcTcYXJvS8crGMMiJkDvXAEGX0ySVeuVQuo_bD_rGeVE_3PLyQUa&usqp=CAU"
		allGroups := []uint{vegetables, proteins, sausages, sauces}

		combo := models.Product{
			WorkspaceID: ws.ID,
			Name:        "Combo Big Mac",
			Description: "Delicioso Combo Big Mac",
			Price:       0,
			Type:        models.ProductTypeCombo,
			ImageURL:    &imageURL,
		}
		if err := tx.Create(&combo).Error; err != nil {
			return err
		}

		burgerContent := "120 gr"
		burger := models.Product{
			WorkspaceID:     ws.ID,
			ParentProductID: &combo.ID,
			Name:            "Hamburguesa Big Mac",
			Description:     "Homburguesa con ... ingredientes",
			Price:           1399,
			Type:            models.ProductTypeComplemented,
			ImageURL:        &imageURL,
			Content:         &burgerContent,
		}
		if err := tx.Create(&burger).Error; err != nil {
			return err
		}
		if err := linkComplementTypes(tx, burger.ID, allGroups); err != nil {
			return err
		}

		nuggetsContent := "8 unidades"
		nuggets := models.Product{
			WorkspaceID:     ws.ID,
			ParentProductID: &combo.ID,
			Name:            "Caja de nuggets",
			Description:     "Nuggets de mcdonald's",
			Price:           2499,
			Type:            models.ProductTypeRegular,
			ImageURL:        &imageURL,
			Content:         &nuggetsContent,
		}
		if err := tx.Create(&nuggets).Error; err != nil {
			return err
		}

		friesContent := "100gr"
		fries := models.Product{
			WorkspaceID:     ws.ID,
			ParentProductID: &combo.ID,
			Name:            "Papas regulares",
			Description:     "Papas fritas tamaño regular",
			Price:           1499,
			Type:            models.ProductTypeRegular,
			ImageURL:        &imageURL,
			Content:         &friesContent,
		}
		if err := tx.Create(&fries).Error; err != nil {
			return err
		}

		custom := models.Product{
			WorkspaceID: ws.ID,
			Name:        "Arma tu Hamburguesa",
			Description: "Arma tu hamburguesa como prefieras",
			Price:       11990,
			Type:        models.ProductTypeComplemented,
			ImageURL:    &imageURL,
		}
		if err := tx.Create(&custom).Error; err != nil {
			return err
		}
		return linkComplementTypes(tx, custom.ID, allGroups)
	})
}

type seedComplement struct {
	Name  string
	Price int64
}

func seedComplementType(tx *gorm.DB, workspaceID uint, name string, required bool, maxSelectable int, complements []seedComplement) (uint, error) {
	group := models.ProductComplementType{
		WorkspaceID:   workspaceID,
		Name:          name,
		Required:      required,
		MaxSelectable: maxSelectable,
	}
	if err := tx.Create(&group).Error; err != nil {
		return 0, err
	}

	for _, sc := range complements {
		complement := models.ProductComplement{
			ProductComplementTypeID: group.ID,
			Name:                    sc.Name,
			Increment:               sc.Price > 0,
			Price:                   sc.Price,
		}
		if err := tx.Create(&complement).Error; err != nil {
			return 0, err
		}
	}
	return group.ID, nil
}

func linkComplementTypes(tx *gorm.DB, productID uint, groupIDs []uint) error {
	for _, id := range groupIDs {
		link := models.ProductComplementTypeLink{
			ProductID:               productID,
			ProductComplementTypeID: id,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}
