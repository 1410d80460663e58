package server

import (
	"context"
	"log/slog"

	invoicespb "github.com/luis-carvajal/invoice-extractor/gen/proto/invoices/v1"
	"github.com/luis-carvajal/invoice-extractor/internal/common"
	"github.com/luis-carvajal/invoice-extractor/internal/export"
)

type ExportServer struct {
	invoicespb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportSummary(ctx context.Context, req *invoicespb.ExportSummaryRequest) (*invoicespb.ExportSummaryResponse, error) {
	filter, err := listFilter(req.GetInvoiceNumber(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	var payload []byte
	switch req.GetFormat() {
	case invoicespb.ExportFormat_EXPORT_FORMAT_XLSX, invoicespb.ExportFormat_EXPORT_FORMAT_UNSPECIFIED:
		payload, err = s.svc.ExportXLSX(ctx, filter)
	case invoicespb.ExportFormat_EXPORT_FORMAT_JSON:
		payload, err = s.svc.ExportJSON(ctx, filter)
	default:
		return nil, common.InvalidArgumentErrorf("unsupported export format %v", req.GetFormat())
	}
	if err != nil {
		s.logger.Error("export.failed", "format", req.GetFormat().String(), "err", err)
		return nil, common.InternalError(err.Error())
	}

	return &invoicespb.ExportSummaryResponse{Payload: payload}, nil
}
