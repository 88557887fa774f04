package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	deliverycontext "greenscore/internal/delivery/context"
	"greenscore/internal/domain/entity"
	domainerrors "greenscore/internal/domain/errors"
	"greenscore/internal/domain/repository"
	"greenscore/internal/domain/scoring"
	"greenscore/internal/domain/service"
	"greenscore/internal/errors"
	"greenscore/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type productService struct {
	productRepo   repository.ProductRepository
	qrcodeService service.QRCodeService
	metrics       service.LedgerMetrics
	logger        *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	QRCodeService service.QRCodeService
	Metrics       service.LedgerMetrics
	Logger        *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:   params.ProductRepo,
		qrcodeService: params.QRCodeService,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}
}

func (s *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateProduct derives the sustainability score and stores the product
func (s *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if !isNonNegativeFinite(input.Cost) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cost must be a finite number >= 0")
	}
	if !isNonNegativeFinite(input.CarbonEmission) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("carbon_emission must be a finite number >= 0")
	}

	product := &entity.Product{
		ID:                  uuid.New(),
		Name:                input.Name,
		Cost:                input.Cost,
		CarbonEmission:      input.CarbonEmission,
		SustainabilityScore: scoring.SustainabilityScore(input.Cost, input.CarbonEmission),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	s.metrics.IncProductCreated()
	s.log(ctx).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.Float64("sustainability_score", product.SustainabilityScore),
	)

	return product, nil
}

// GetProduct returns a product by ID
func (s *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.WithMessage(translateNotFound(err), "failed to get product")
	}

	return product, nil
}

// GenerateProductQR renders the scan code of an existing product
func (s *productService) GenerateProductQR(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

func isNonNegativeFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
