package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/argos/backend/internal/domain/analytics"
	"github.com/argos/backend/internal/domain/identity"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/export"
	"github.com/argos/backend/internal/infrastructure/mail"
	"github.com/argos/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoSections is returned when an export names no section
var ErrNoSections = shared.NewDomainError("INVALID_SECTIONS", "At least one section is required")

// ErrInvalidDelivery is returned for delivery modes other than download, storage and email
var ErrInvalidDelivery = shared.NewDomainError("INVALID_DELIVERY", "Delivery must be download, storage or email")

// ObjectStore keeps uploaded exports
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PresignDownload(ctx context.Context, key string) (string, time.Time, error)
}

// Mailer sends e-mail
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// IDGenerator hands out unique object key ids
type IDGenerator interface {
	Next() string
}

// Result is the outcome of an export. Exactly one field is set, matching the delivery.
type Result struct {
	File    *export.File
	Stored  *StoredExportResponse
	Emailed *EmailedExportResponse
}

// Service encodes report sections and delivers them
type Service struct {
	dataset  analytics.Source
	userRepo identity.UserRepository
	store    ObjectStore
	mailer   Mailer
	ids      IDGenerator
	metrics  *telemetry.BusinessMetrics
	logger   *zap.Logger
	now      func() time.Time
}

// Option configures optional delivery backends
type Option func(*Service)

// WithObjectStore enables storage delivery
func WithObjectStore(store ObjectStore, ids IDGenerator) Option {
	return func(s *Service) {
		s.store = store
		s.ids = ids
	}
}

// WithMailer enables e-mail delivery
func WithMailer(mailer Mailer) Option {
	return func(s *Service) {
		s.mailer = mailer
	}
}

// WithMetrics records export counts and sizes
func WithMetrics(m *telemetry.BusinessMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates an export service. Storage and e-mail delivery stay unavailable unless configured.
func NewService(dataset analytics.Source, userRepo identity.UserRepository, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		dataset:  dataset,
		userRepo: userRepo,
		logger:   logger.Named("export"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Export encodes the requested sections and delivers them as asked
func (s *Service) Export(ctx context.Context, userID uuid.UUID, req ExportRequest) (*Result, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "export", "export",
		telemetry.WithAttribute(telemetry.SpanAttrUserID, userID.String()),
		telemetry.WithAttribute(telemetry.SpanAttrSections, req.Sections),
		telemetry.WithAttribute(telemetry.SpanAttrFormat, req.Format),
		telemetry.WithAttribute(telemetry.SpanAttrDelivery, req.Delivery),
	)
	defer span.End()

	result, size, err := s.export(ctx, userID, req)
	telemetry.RecordError(span, err)
	if err == nil {
		telemetry.SetAttributes(span, telemetry.SpanAttrBytes, size)
	}
	if !isValidationError(err) {
		format := req.Format
		if format == "" {
			format = string(export.FormatCSV)
		}
		s.metrics.RecordExport(ctx, format, deliveryOrDefault(req.Delivery), size, err)
	}
	return result, err
}

func (s *Service) export(ctx context.Context, userID uuid.UUID, req ExportRequest) (*Result, int, error) {
	sections, err := NormalizeSections(req.Sections)
	if err != nil {
		return nil, 0, err
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return nil, 0, err
	}

	delivery := deliveryOrDefault(req.Delivery)
	switch delivery {
	case DeliveryDownload:
	case DeliveryStorage:
		if s.store == nil || s.ids == nil {
			return nil, 0, shared.NewDomainError(shared.ErrServiceUnavailable.Code, "Object storage is not configured")
		}
	case DeliveryEmail:
		if s.mailer == nil {
			return nil, 0, shared.NewDomainError(shared.ErrServiceUnavailable.Code, "E-mail delivery is not configured")
		}
	default:
		return nil, 0, ErrInvalidDelivery
	}

	file, err := export.Encode(s.dataset.Dataset(), sections, format, s.now())
	if err != nil {
		return nil, 0, err
	}

	switch delivery {
	case DeliveryStorage:
		stored, err := s.upload(ctx, userID, file)
		if err != nil {
			return nil, 0, err
		}
		return &Result{Stored: stored}, len(file.Data), nil
	case DeliveryEmail:
		emailed, err := s.send(ctx, userID, req.Email, file)
		if err != nil {
			return nil, 0, err
		}
		return &Result{Emailed: emailed}, len(file.Data), nil
	default:
		return &Result{File: file}, len(file.Data), nil
	}
}

func (s *Service) upload(ctx context.Context, userID uuid.UUID, file *export.File) (*StoredExportResponse, error) {
	key := fmt.Sprintf("exports/%s/%s.%s", userID, s.ids.Next(), file.Format)
	if err := s.store.Upload(ctx, key, file.Data, file.ContentType); err != nil {
		return nil, err
	}
	url, expiresAt, err := s.store.PresignDownload(ctx, key)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Export uploaded",
		zap.String("user_id", userID.String()),
		zap.String("key", key),
		zap.Int("size", len(file.Data)),
	)
	return &StoredExportResponse{
		Key:       key,
		URL:       url,
		ExpiresAt: expiresAt,
		Filename:  file.Filename,
	}, nil
}

func (s *Service) send(ctx context.Context, userID uuid.UUID, to string, file *export.File) (*EmailedExportResponse, error) {
	if to == "" {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		to = user.Email
	}

	msg := mail.Message{
		To:       []string{to},
		Subject:  export.ReportName,
		HTMLBody: fmt.Sprintf("<p>Segue em anexo o relatório <strong>%s</strong> gerado em %s.</p>", file.Filename, s.now().Format("02/01/2006 15:04")),
		Attachments: []mail.Attachment{{
			Filename:    file.Filename,
			ContentType: file.ContentType,
			Data:        file.Data,
		}},
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Info("Export e-mailed",
		zap.String("user_id", userID.String()),
		zap.String("filename", file.Filename),
	)
	return &EmailedExportResponse{To: to, Filename: file.Filename}, nil
}

func deliveryOrDefault(delivery string) string {
	if delivery == "" {
		return DeliveryDownload
	}
	return delivery
}

// isValidationError reports request errors that never reached encoding
func isValidationError(err error) bool {
	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return strings.HasPrefix(domainErr.Code, "INVALID_")
}

// NormalizeSections validates section ids and returns them in catalog order without duplicates
func NormalizeSections(ids []string) ([]analytics.SectionID, error) {
	if len(ids) == 0 {
		return nil, ErrNoSections
	}
	requested := make(map[analytics.SectionID]bool, len(ids))
	for _, id := range ids {
		section, err := analytics.LookupSection(analytics.SectionID(id))
		if err != nil {
			return nil, shared.NewDomainError("INVALID_SECTIONS", fmt.Sprintf("Unknown report section: %s", id))
		}
		requested[section.ID] = true
	}

	out := make([]analytics.SectionID, 0, len(requested))
	for _, section := range analytics.Sections {
		if requested[section.ID] {
			out = append(out, section.ID)
		}
	}
	return out, nil
}
