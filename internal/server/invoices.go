package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invoicespb "github.com/luis-carvajal/invoice-extractor/gen/proto/invoices/v1"
	"github.com/luis-carvajal/invoice-extractor/internal/common"
	"github.com/luis-carvajal/invoice-extractor/internal/pipeline"
	"github.com/luis-carvajal/invoice-extractor/internal/repository"
	"github.com/luis-carvajal/invoice-extractor/internal/utils"
)

type InvoicesService struct {
	invoicespb.UnimplementedInvoicesServiceServer
	pipeline    *pipeline.Pipeline
	invoiceRepo repository.InvoiceRepository
	logger      *slog.Logger
}

func NewInvoicesService(p *pipeline.Pipeline, invoiceRepo repository.InvoiceRepository, logger *slog.Logger) *InvoicesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoicesService{
		pipeline:    p,
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (s *InvoicesService) ParseDocument(ctx context.Context, req *invoicespb.ParseDocumentRequest) (*invoicespb.ParseDocumentResponse, error) {
	path := strings.TrimSpace(req.GetFilePath())
	if path == "" {
		return nil, common.InvalidArgumentError("file_path is required")
	}

	res, err := s.pipeline.ParseFile(ctx, path)
	if err != nil {
		s.logger.Error("parse document failed", "path", path, "error", err)
		return nil, status.Errorf(codes.Internal, "parse document: %v", err)
	}

	out := utils.ToPBInvoiceFromEntity(res.Invoice)
	out.TemplateName = res.Template
	resp := &invoicespb.ParseDocumentResponse{Invoice: out}
	if res.InvoiceID != uuid.Nil {
		resp.InvoiceId = res.InvoiceID.String()
	}
	if res.JobID != uuid.Nil {
		resp.JobId = res.JobID.String()
	}
	return resp, nil
}

func (s *InvoicesService) GetInvoice(ctx context.Context, req *invoicespb.GetInvoiceRequest) (*invoicespb.GetInvoiceResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetInvoiceId()))
	if err != nil {
		return nil, common.InvalidArgumentError("invoice_id must be a UUID")
	}

	row, lines, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("get invoice failed", "invoice_id", id, "error", err)
		return nil, common.NotFoundError("invoice not found")
	}
	return &invoicespb.GetInvoiceResponse{Invoice: utils.ToPBInvoice(row, lines)}, nil
}

func (s *InvoicesService) ListInvoices(ctx context.Context, req *invoicespb.ListInvoicesRequest) (*invoicespb.ListInvoicesResponse, error) {
	filter, err := listFilter(req.GetInvoiceNumber(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	invs, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		s.logger.Error("list invoices failed", "error", err)
		return nil, status.Errorf(codes.Internal, "list invoices: %v", err)
	}

	out := make([]*invoicespb.Invoice, 0, len(invs))
	for _, inv := range invs {
		out = append(out, utils.ToPBInvoiceFromEntity(inv))
	}
	return &invoicespb.ListInvoicesResponse{Invoices: out}, nil
}

// listFilter validates the shared filter fields of list and export requests.
func listFilter(invoiceNumber, fromDate, toDate string) (repository.ListFilter, error) {
	filter := repository.ListFilter{InvoiceNumber: strings.TrimSpace(invoiceNumber)}

	parseDate := func(s string) (*time.Time, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("invalid date %q (want YYYY-MM-DD)", s)
		}
		return &t, nil
	}

	var err error
	if filter.CreatedFrom, err = parseDate(fromDate); err != nil {
		return filter, err
	}
	if filter.CreatedTo, err = parseDate(toDate); err != nil {
		return filter, err
	}
	if filter.CreatedTo != nil {
		// inclusive upper bound for a date-only value
		end := filter.CreatedTo.Add(24*time.Hour - time.Nanosecond)
		filter.CreatedTo = &end
	}
	return filter, nil
}
