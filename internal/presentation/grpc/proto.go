package grpc

// proto.go defines the gRPC server interface derived from bib/cibil/v1/cibil.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/bibbank/cibil-service/api/gen/go/bib/cibil/v1.
// Request and response messages reuse the application DTOs; the JSON codec in
// json_codec.go carries them on the wire.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/cibil-service/internal/application/dto"
)

// CIBILServiceServer is the server API for CIBILService.
// It mirrors the proto-generated interface from bib.cibil.v1.CIBILService.
type CIBILServiceServer interface {
	IngestCustomerData(context.Context, *dto.IngestCustomerDataRequest) (*dto.IngestCustomerDataResponse, error)
	CalculateScore(context.Context, *dto.CalculateScoreRequest) (*dto.CalculateScoreResponse, error)
	ScoreProfile(context.Context, *dto.ScoreProfileRequest) (*dto.ScoreProfileResponse, error)
	GetScoreHistory(context.Context, *dto.GetScoreHistoryRequest) (*dto.ScoreHistoryResponse, error)
	GetDashboard(context.Context, *dto.GetDashboardRequest) (*dto.DashboardResponse, error)
	GenerateReport(context.Context, *dto.GenerateReportRequest) (*dto.ReportResponse, error)
	mustEmbedUnimplementedCIBILServiceServer()
}

// UnimplementedCIBILServiceServer provides forward-compatible default implementations.
type UnimplementedCIBILServiceServer struct{}

func (UnimplementedCIBILServiceServer) IngestCustomerData(context.Context, *dto.IngestCustomerDataRequest) (*dto.IngestCustomerDataResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestCustomerData not implemented")
}
func (UnimplementedCIBILServiceServer) CalculateScore(context.Context, *dto.CalculateScoreRequest) (*dto.CalculateScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateScore not implemented")
}
func (UnimplementedCIBILServiceServer) ScoreProfile(context.Context, *dto.ScoreProfileRequest) (*dto.ScoreProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreProfile not implemented")
}
func (UnimplementedCIBILServiceServer) GetScoreHistory(context.Context, *dto.GetScoreHistoryRequest) (*dto.ScoreHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScoreHistory not implemented")
}
func (UnimplementedCIBILServiceServer) GetDashboard(context.Context, *dto.GetDashboardRequest) (*dto.DashboardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDashboard not implemented")
}
func (UnimplementedCIBILServiceServer) GenerateReport(context.Context, *dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateReport not implemented")
}
func (UnimplementedCIBILServiceServer) mustEmbedUnimplementedCIBILServiceServer() {}

// RegisterCIBILServiceServer registers the CIBILServiceServer with the gRPC server.
func RegisterCIBILServiceServer(s *grpclib.Server, srv CIBILServiceServer) {
	s.RegisterService(&_CIBILService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _CIBILService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "bib.cibil.v1.CIBILService",
	HandlerType: (*CIBILServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "IngestCustomerData", Handler: _CIBILService_IngestCustomerData_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "CalculateScore", Handler: _CIBILService_CalculateScore_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "ScoreProfile", Handler: _CIBILService_ScoreProfile_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "GetScoreHistory", Handler: _CIBILService_GetScoreHistory_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "GetDashboard", Handler: _CIBILService_GetDashboard_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "GenerateReport", Handler: _CIBILService_GenerateReport_Handler},         //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _CIBILService_IngestCustomerData_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.IngestCustomerDataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CIBILServiceServer).IngestCustomerData(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.cibil.v1.CIBILService/IngestCustomerData",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CIBILServiceServer).IngestCustomerData(ctx, req.(*dto.IngestCustomerDataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CIBILService_CalculateScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.CalculateScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CIBILServiceServer).CalculateScore(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.cibil.v1.CIBILService/CalculateScore",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CIBILServiceServer).CalculateScore(ctx, req.(*dto.CalculateScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CIBILService_ScoreProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ScoreProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CIBILServiceServer).ScoreProfile(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.cibil.v1.CIBILService/ScoreProfile",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CIBILServiceServer).ScoreProfile(ctx, req.(*dto.ScoreProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CIBILService_GetScoreHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.GetScoreHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CIBILServiceServer).GetScoreHistory(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.cibil.v1.CIBILService/GetScoreHistory",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CIBILServiceServer).GetScoreHistory(ctx, req.(*dto.GetScoreHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CIBILService_GetDashboard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.GetDashboardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CIBILServiceServer).GetDashboard(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.cibil.v1.CIBILService/GetDashboard",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CIBILServiceServer).GetDashboard(ctx, req.(*dto.GetDashboardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CIBILService_GenerateReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.GenerateReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CIBILServiceServer).GenerateReport(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.cibil.v1.CIBILService/GenerateReport",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CIBILServiceServer).GenerateReport(ctx, req.(*dto.GenerateReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}
