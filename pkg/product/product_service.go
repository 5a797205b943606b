package product

import (
	"context"
	"errors"
	"fmt"

	"topup-store/domain"
	"topup-store/entities"
	"topup-store/internal/utils/storage"
	"topup-store/pkg/store"
)

type (
	ProductService interface {
		GetAllProducts(ctx context.Context) ([]entities.Product, error)
		GetProduct(ctx context.Context, id string) (*entities.Product, error)
		CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*entities.Product, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (*entities.Product, error)
		DeleteProduct(ctx context.Context, id string) error
		UploadProductImage(ctx context.Context, id string, req domain.UploadProductImageRequest) (*entities.Product, error)
	}

	productService struct {
		store store.Store
		s3    storage.AwsS3
	}
)

func NewProductService(st store.Store, s3 storage.AwsS3) ProductService {
	return &productService{
		store: st,
		s3:    s3,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]entities.Product, error) {
	return s.store.GetAllProducts(ctx)
}

func (s *productService) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*entities.Product, error) {
	product := &entities.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Icon:        req.Icon,
		Image:       req.Image,
		Category:    req.Category,
		Packages:    req.Packages,
		SortOrder:   req.SortOrder,
	}
	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (*entities.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Icon != "" {
		product.Icon = req.Icon
	}
	if req.Image != "" {
		product.Image = req.Image
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Packages != nil {
		product.Packages = *req.Packages
	}
	if req.SortOrder != nil {
		product.SortOrder = *req.SortOrder
	}

	if err := s.store.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *productService) UploadProductImage(ctx context.Context, id string, req domain.UploadProductImageRequest) (*entities.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	fileName := fmt.Sprintf("product-%s", product.ID)
	var objectKey string
	var uploadErr error

	if product.Image != "" {
		existingKey := s.s3.GetObjectKeyFromLink(product.Image)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "products", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "products", storage.AllowImage...)
	}
	if uploadErr != nil {
		return nil, uploadErr
	}

	product.Image = s.s3.GetPublicLinkKey(objectKey)
	if err := s.store.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
