package domain

import (
	"errors"
	"mime/multipart"

	"topup-store/entities"
)

var (
	MessageSuccessGetProducts        = "products retrieved successfully"
	MessageSuccessGetProduct         = "product retrieved successfully"
	MessageSuccessCreateProduct      = "product created successfully"
	MessageSuccessUpdateProduct      = "product updated successfully"
	MessageSuccessDeleteProduct      = "product deleted successfully"
	MessageSuccessUploadProductImage = "product image uploaded successfully"

	MessageFailedGetProducts        = "failed to retrieve products"
	MessageFailedGetProduct         = "failed to retrieve product"
	MessageFailedCreateProduct      = "failed to create product"
	MessageFailedUpdateProduct      = "failed to update product"
	MessageFailedDeleteProduct      = "failed to delete product"
	MessageFailedUploadProductImage = "failed to upload product image"

	ErrProductNotFound = errors.New("product not found")
)

type (
	CreateProductRequest struct {
		Name        string               `json:"name" validate:"required"`
		Price       int                  `json:"price" validate:"required"`
		Description string               `json:"description"`
		Icon        string               `json:"icon"`
		Image       string               `json:"image"`
		Category    string               `json:"category" validate:"required,oneof=games cards special"`
		Packages    entities.PackageList `json:"packages"`
		SortOrder   int                  `json:"order"`
	}

	// Zero-valued fields are left unchanged. Packages is a pointer so a
	// product can be emptied of variants (which makes it not orderable).
	UpdateProductRequest struct {
		Name        string                `json:"name"`
		Price       int                   `json:"price"`
		Description string                `json:"description"`
		Icon        string                `json:"icon"`
		Image       string                `json:"image"`
		Category    string                `json:"category" validate:"omitempty,oneof=games cards special"`
		Packages    *entities.PackageList `json:"packages"`
		SortOrder   *int                  `json:"order"`
	}

	UploadProductImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
