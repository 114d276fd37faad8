package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gstreturns/internal/config"
	"gstreturns/internal/domain"
	"gstreturns/internal/gst"
	"gstreturns/internal/port"
	"gstreturns/internal/returns"
)

const archiveURLExpirySeconds = 900

// GenerateReturnInput selects the return to (re)generate.
type GenerateReturnInput struct {
	BusinessID uuid.UUID
	ReturnType domain.ReturnType
	Period     string
}

// ReturnService assembles, stores and files periodic returns.
type ReturnService interface {
	Generate(ctx context.Context, input GenerateReturnInput) (*domain.PeriodicReturn, error)
	Get(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (*domain.PeriodicReturn, error)
	List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.PeriodicReturn, int, error)
	MarkFiled(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (*domain.PeriodicReturn, error)
	// GSTR1 decodes a stored GSTR-1 payload for export.
	GSTR1(ctx context.Context, businessID uuid.UUID, period string) (*returns.GSTR1, error)
	// ArchiveURL presigns the archived payload of a stored return.
	ArchiveURL(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (string, error)
}

type returnService struct {
	businessRepo port.BusinessRepository
	invoiceRepo  port.InvoiceRepository
	purchaseRepo port.PurchaseRepository
	returnRepo   port.ReturnRepository
	assembler    *returns.Assembler
	storage      port.ObjectStorage
	s3Cfg        *config.S3Config
	log          *zap.Logger
	now          func() time.Time
}

// NewReturnService creates a new ReturnService implementation. storage may be nil, which
// disables the payload archive. now defaults to time.Now.
func NewReturnService(
	businessRepo port.BusinessRepository,
	invoiceRepo port.InvoiceRepository,
	purchaseRepo port.PurchaseRepository,
	returnRepo port.ReturnRepository,
	assembler *returns.Assembler,
	storage port.ObjectStorage,
	s3Cfg *config.S3Config,
	log *zap.Logger,
	now func() time.Time,
) ReturnService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &returnService{
		businessRepo: businessRepo,
		invoiceRepo:  invoiceRepo,
		purchaseRepo: purchaseRepo,
		returnRepo:   returnRepo,
		assembler:    assembler,
		storage:      storage,
		s3Cfg:        s3Cfg,
		log:          log,
		now:          now,
	}
}

// ArchiveKey is the object key of an archived return payload.
func ArchiveKey(businessID uuid.UUID, returnType domain.ReturnType, period string) string {
	return fmt.Sprintf("returns/%s/%s/%s.json", businessID, returnType, period)
}

func (s *returnService) parse(returnType domain.ReturnType, period string) (gst.Period, error) {
	if !domain.ValidReturnTypes[returnType] {
		return gst.Period{}, domain.NewFieldError(domain.ErrInvalidReturnType, "return_type", string(returnType),
			"one of gstr1, gstr3b")
	}
	return gst.ParsePeriod(period, s.assembler.Rules().Location)
}

func (s *returnService) Generate(ctx context.Context, input GenerateReturnInput) (*domain.PeriodicReturn, error) {
	period, err := s.parse(input.ReturnType, input.Period)
	if err != nil {
		return nil, err
	}
	biz, err := s.businessRepo.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, err
	}

	existing, err := s.returnRepo.GetByPeriod(ctx, biz.ID, input.ReturnType, period.String())
	switch {
	case errors.Is(err, domain.ErrReturnNotFound):
		existing = nil
	case err != nil:
		return nil, err
	case existing.Status == domain.ReturnStatusFiled:
		return nil, domain.ErrReturnAlreadyFiled
	}

	invoices, err := s.invoiceRepo.ListByPeriod(ctx, biz.ID, period.Start(), period.End())
	if err != nil {
		return nil, err
	}

	now := s.now()
	ret := &domain.PeriodicReturn{
		ID:           uuid.New(),
		BusinessID:   biz.ID,
		GSTIN:        biz.GSTIN,
		ReturnType:   input.ReturnType,
		FilingPeriod: period.String(),
		Status:       domain.ReturnStatusGenerated,
		GeneratedAt:  now.UTC(),
	}
	if existing != nil {
		ret.ID = existing.ID
	}

	fields := []zap.Field{
		zap.String("business_id", biz.ID.String()),
		zap.String("return_type", string(input.ReturnType)),
		zap.String("period", period.String()),
		zap.Int("invoices", len(invoices)),
	}

	var payload any
	switch input.ReturnType {
	case domain.ReturnTypeGSTR1:
		out, err := s.assembler.AssembleGSTR1(returns.GSTR1Input{Business: biz, Period: period, Invoices: invoices})
		if err != nil {
			return nil, err
		}
		payload = out
		ret.TotalTaxLiability = out.Summary.TotalTax
	case domain.ReturnTypeGSTR3B:
		purchases, err := s.purchaseRepo.ListByPeriod(ctx, biz.ID, period.Start(), period.End())
		if err != nil {
			return nil, err
		}
		out, err := s.assembler.AssembleGSTR3B(returns.GSTR3BInput{
			Business:     biz,
			Period:       period,
			Invoices:     invoices,
			Purchases:    purchases,
			Now:          now,
			PriorAttempt: existing != nil,
		})
		if err != nil {
			return nil, err
		}
		payload = out
		ret.TotalTaxLiability = out.Summary.TotalOutputTax
		net := out.TaxPayable.Total
		ret.NetTaxPayable = &net
		fields = append(fields,
			zap.Int("purchases", len(purchases)),
			zap.Float64("net_tax_payable", net),
			zap.Float64("late_fee", out.IntrLtfee.Ltfee.Total))
	}

	ret.Payload, err = json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("returnService.Generate marshal: %w", err)
	}
	if err := s.returnRepo.Upsert(ctx, ret); err != nil {
		return nil, err
	}

	s.log.Info("return generated", append(fields, zap.Float64("total_tax_liability", ret.TotalTaxLiability))...)
	s.archive(ctx, ret)
	return ret, nil
}

// archive copies the payload to object storage. Failures are logged, never returned.
func (s *returnService) archive(ctx context.Context, ret *domain.PeriodicReturn) {
	if s.storage == nil || s.s3Cfg == nil || s.s3Cfg.Bucket == "" {
		return
	}
	key := ArchiveKey(ret.BusinessID, ret.ReturnType, ret.FilingPeriod)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(ret.Payload),
		ContentType: "application/json",
		Size:        int64(len(ret.Payload)),
	})
	if err != nil {
		s.log.Warn("return archive failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *returnService) Get(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (*domain.PeriodicReturn, error) {
	p, err := s.parse(returnType, period)
	if err != nil {
		return nil, err
	}
	return s.returnRepo.GetByPeriod(ctx, businessID, returnType, p.String())
}

func (s *returnService) List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.PeriodicReturn, int, error) {
	return s.returnRepo.ListByBusiness(ctx, businessID, offset, limit)
}

func (s *returnService) MarkFiled(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (*domain.PeriodicReturn, error) {
	p, err := s.parse(returnType, period)
	if err != nil {
		return nil, err
	}
	err = s.returnRepo.MarkFiled(ctx, port.FileReturnInput{
		BusinessID: businessID,
		ReturnType: returnType,
		Period:     p.String(),
		From:       p.Start(),
		To:         p.End(),
		FiledAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("return filed",
		zap.String("business_id", businessID.String()),
		zap.String("return_type", string(returnType)),
		zap.String("period", p.String()))
	return s.returnRepo.GetByPeriod(ctx, businessID, returnType, p.String())
}

func (s *returnService) GSTR1(ctx context.Context, businessID uuid.UUID, period string) (*returns.GSTR1, error) {
	ret, err := s.Get(ctx, businessID, domain.ReturnTypeGSTR1, period)
	if err != nil {
		return nil, err
	}
	var out returns.GSTR1
	if err := json.Unmarshal(ret.Payload, &out); err != nil {
		return nil, fmt.Errorf("returnService.GSTR1 decode: %w", err)
	}
	return &out, nil
}

func (s *returnService) ArchiveURL(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (string, error) {
	ret, err := s.Get(ctx, businessID, returnType, period)
	if err != nil {
		return "", err
	}
	if s.storage == nil || s.s3Cfg == nil || s.s3Cfg.Bucket == "" {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, s.s3Cfg.Bucket,
		ArchiveKey(ret.BusinessID, ret.ReturnType, ret.FilingPeriod), archiveURLExpirySeconds)
}
