package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/cibil-service/internal/application/dto"
	"github.com/bibbank/cibil-service/internal/application/usecase"
	"github.com/bibbank/cibil-service/internal/domain/service"
	"github.com/bibbank/cibil-service/pkg/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// statusFromError maps use case errors onto gRPC status codes. Caller faults
// keep their message; anything unrecognized surfaces as a bare Internal so
// storage details never leak to clients.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, usecase.ErrNoScoreOnFile):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, usecase.ErrInvalidRequest),
		errors.Is(err, service.ErrMissingRequiredField),
		errors.Is(err, service.ErrMissingWeightFactor),
		errors.Is(err, service.ErrZeroTotalWeight),
		errors.Is(err, service.ErrPaymentCountMismatch),
		errors.Is(err, service.ErrNegativeValue):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// Compile-time assertion that CIBILServiceHandler implements CIBILServiceServer.
var _ CIBILServiceServer = (*CIBILServiceHandler)(nil)

// CIBILServiceHandler implements the gRPC CIBILServiceServer interface.
type CIBILServiceHandler struct {
	UnimplementedCIBILServiceServer
	ingestCustomerData *usecase.IngestCustomerData
	calculateScore     *usecase.CalculateScore
	scoreProfile       *usecase.ScoreProfile
	getScoreHistory    *usecase.GetScoreHistory
	getDashboard       *usecase.GetDashboard
	generateReport     *usecase.GenerateReport
	logger             *slog.Logger
}

// NewCIBILServiceHandler creates a new gRPC handler.
func NewCIBILServiceHandler(
	ingestCustomerData *usecase.IngestCustomerData,
	calculateScore *usecase.CalculateScore,
	scoreProfile *usecase.ScoreProfile,
	getScoreHistory *usecase.GetScoreHistory,
	getDashboard *usecase.GetDashboard,
	generateReport *usecase.GenerateReport,
	logger *slog.Logger,
) *CIBILServiceHandler {
	return &CIBILServiceHandler{
		ingestCustomerData: ingestCustomerData,
		calculateScore:     calculateScore,
		scoreProfile:       scoreProfile,
		getScoreHistory:    getScoreHistory,
		getDashboard:       getDashboard,
		generateReport:     generateReport,
		logger:             logger,
	}
}

// IngestCustomerData handles a bulk customer data submission.
func (h *CIBILServiceHandler) IngestCustomerData(ctx context.Context, req *dto.IngestCustomerDataRequest) (*dto.IngestCustomerDataResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLender, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resp, err := h.ingestCustomerData.Execute(ctx, *req)
	if err != nil {
		h.logger.Error("failed to ingest customer data",
			slog.String("error", err.Error()),
		)
		return nil, statusFromError(err)
	}

	h.logger.Info("customer data ingested",
		slog.String("customer_id", resp.Customer.ID.String()),
		slog.Bool("customer_created", resp.CustomerCreated),
		slog.Int("payments_added", resp.Payments),
	)

	return &resp, nil
}

// CalculateScore handles a derived-mode score calculation request.
func (h *CIBILServiceHandler) CalculateScore(ctx context.Context, req *dto.CalculateScoreRequest) (*dto.CalculateScoreResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLender, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resp, err := h.calculateScore.Execute(ctx, *req)
	if err != nil {
		h.logger.Error("failed to calculate score",
			slog.String("error", err.Error()),
		)
		return nil, statusFromError(err)
	}

	h.logger.Info("score calculated",
		slog.Int("score", resp.ScoreSummary.FinalScore),
		slog.String("grade", resp.ScoreSummary.ScoreGrade),
	)

	return &resp, nil
}

// ScoreProfile handles a stateless declarative-mode scoring request.
func (h *CIBILServiceHandler) ScoreProfile(ctx context.Context, req *dto.ScoreProfileRequest) (*dto.ScoreProfileResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLender, auth.RoleAnalyst, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resp, err := h.scoreProfile.Execute(ctx, *req)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &resp, nil
}

// GetScoreHistory handles a score history listing request.
func (h *CIBILServiceHandler) GetScoreHistory(ctx context.Context, req *dto.GetScoreHistoryRequest) (*dto.ScoreHistoryResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLender, auth.RoleAnalyst, auth.RoleAuditor, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resp, err := h.getScoreHistory.Execute(ctx, *req)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &resp, nil
}

// GetDashboard handles a customer dashboard request.
func (h *CIBILServiceHandler) GetDashboard(ctx context.Context, req *dto.GetDashboardRequest) (*dto.DashboardResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLender, auth.RoleAnalyst, auth.RoleAuditor, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resp, err := h.getDashboard.Execute(ctx, *req)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &resp, nil
}

// GenerateReport handles a credit report generation request.
func (h *CIBILServiceHandler) GenerateReport(ctx context.Context, req *dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLender, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resp, err := h.generateReport.Execute(ctx, *req)
	if err != nil {
		h.logger.Error("failed to generate report",
			slog.String("error", err.Error()),
		)
		return nil, statusFromError(err)
	}

	h.logger.Info("credit report generated",
		slog.String("report_id", resp.ID.String()),
		slog.String("customer_id", resp.CustomerID.String()),
	)

	return &resp, nil
}
