package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// Límites de imágenes de producto.
const (
	MaxImageBytes   = 5 << 20
	ImageURLExpiry  = 15 * time.Minute
	imageKeyPrefix  = "productos"
	defaultImageExt = ".img"
	imageMIMEPrefix = "image/"
)

// ProductImageUseCase sube y firma URLs de imágenes de productos en el almacenamiento de objetos.
// Con storage nil (MinIO sin configurar) todas las operaciones devuelven domain.ErrStorageDisabled.
type ProductImageUseCase struct {
	repo    repository.ProductRepository
	storage ports.ObjectStorage
}

// NewProductImageUseCase construye el caso de uso.
func NewProductImageUseCase(repo repository.ProductRepository, storage ports.ObjectStorage) *ProductImageUseCase {
	return &ProductImageUseCase{repo: repo, storage: storage}
}

// ImageUpload archivo recibido desde el formulario multipart.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Upload guarda la imagen bajo productos/<empresa>/<producto>/<uuid><ext> y elimina la anterior.
func (uc *ProductImageUseCase) Upload(ctx context.Context, companyID, productID string, file ImageUpload) (*dto.ProductResponse, error) {
	if uc.storage == nil {
		return nil, domain.ErrStorageDisabled
	}
	if !strings.HasPrefix(file.ContentType, imageMIMEPrefix) {
		return nil, domain.Errorf(domain.ErrInvalidInput, "el archivo debe ser una imagen")
	}
	if file.Size <= 0 || file.Size > MaxImageBytes {
		return nil, domain.Errorf(domain.ErrInvalidInput, "la imagen debe pesar como máximo %d MiB", MaxImageBytes>>20)
	}
	product, err := getProduct(ctx, uc.repo, companyID, productID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(file.Filename))
	if ext == "" {
		ext = defaultImageExt
	}
	key := fmt.Sprintf("%s/%s/%s/%s%s", imageKeyPrefix, companyID, productID, uuid.New().String(), ext)
	if err := uc.storage.Put(ctx, key, file.Body, file.Size, file.ContentType); err != nil {
		return nil, fmt.Errorf("subir imagen: %w", err)
	}
	if err := uc.repo.UpdateImageKey(ctx, companyID, productID, key); err != nil {
		_ = uc.storage.Delete(ctx, key)
		return nil, err
	}
	if product.ImageKey != "" {
		_ = uc.storage.Delete(ctx, product.ImageKey)
	}
	product.ImageKey = key
	return toProductResponse(product), nil
}

// URL devuelve una URL prefirmada de la imagen válida por ImageURLExpiry.
func (uc *ProductImageUseCase) URL(ctx context.Context, companyID, productID string) (*dto.ProductImageResponse, error) {
	if uc.storage == nil {
		return nil, domain.ErrStorageDisabled
	}
	product, err := getProduct(ctx, uc.repo, companyID, productID)
	if err != nil {
		return nil, err
	}
	if product.ImageKey == "" {
		return nil, domain.Errorf(domain.ErrNotFound, "el producto no tiene imagen")
	}
	url, err := uc.storage.PresignGet(ctx, product.ImageKey, ImageURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("firmar url: %w", err)
	}
	return &dto.ProductImageResponse{URL: url, ExpiresIn: int(ImageURLExpiry.Seconds())}, nil
}
