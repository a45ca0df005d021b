// Package v1 declares the feedback.v1.CohortCourseEvaluation gRPC service.
// Requests and responses are protobuf well-known types: usernames travel as
// StringValue, ids as Int64Value, records as Struct and lists as ListValue.
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "feedback.v1.CohortCourseEvaluation"

const (
	CohortCourseEvaluation_GetCohortCoursesForTrainer_FullMethodName     = "/feedback.v1.CohortCourseEvaluation/GetCohortCoursesForTrainer"
	CohortCourseEvaluation_GetEvaluationsForTrainee_FullMethodName       = "/feedback.v1.CohortCourseEvaluation/GetEvaluationsForTrainee"
	CohortCourseEvaluation_GetCurrentEvaluationForTrainee_FullMethodName = "/feedback.v1.CohortCourseEvaluation/GetCurrentEvaluationForTrainee"
	CohortCourseEvaluation_GetEvaluation_FullMethodName                  = "/feedback.v1.CohortCourseEvaluation/GetEvaluation"
	CohortCourseEvaluation_GetEvaluationsForCourse_FullMethodName        = "/feedback.v1.CohortCourseEvaluation/GetEvaluationsForCourse"
)

// CohortCourseEvaluationClient is the client API for the CohortCourseEvaluation service.
type CohortCourseEvaluationClient interface {
	GetCohortCoursesForTrainer(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetEvaluationsForTrainee(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetCurrentEvaluationForTrainee(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetEvaluation(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetEvaluationsForCourse(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type cohortCourseEvaluationClient struct {
	cc grpc.ClientConnInterface
}

func NewCohortCourseEvaluationClient(cc grpc.ClientConnInterface) CohortCourseEvaluationClient {
	return &cohortCourseEvaluationClient{cc}
}

func (c *cohortCourseEvaluationClient) GetCohortCoursesForTrainer(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, CohortCourseEvaluation_GetCohortCoursesForTrainer_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cohortCourseEvaluationClient) GetEvaluationsForTrainee(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, CohortCourseEvaluation_GetEvaluationsForTrainee_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cohortCourseEvaluationClient) GetCurrentEvaluationForTrainee(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CohortCourseEvaluation_GetCurrentEvaluationForTrainee_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cohortCourseEvaluationClient) GetEvaluation(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CohortCourseEvaluation_GetEvaluation_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cohortCourseEvaluationClient) GetEvaluationsForCourse(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, CohortCourseEvaluation_GetEvaluationsForCourse_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CohortCourseEvaluationServer is the server API for the CohortCourseEvaluation service.
// All implementations must embed UnimplementedCohortCourseEvaluationServer
// for forward compatibility.
type CohortCourseEvaluationServer interface {
	GetCohortCoursesForTrainer(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	GetEvaluationsForTrainee(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	GetCurrentEvaluationForTrainee(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GetEvaluation(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	GetEvaluationsForCourse(context.Context, *wrapperspb.Int64Value) (*structpb.ListValue, error)
	mustEmbedUnimplementedCohortCourseEvaluationServer()
}

// UnimplementedCohortCourseEvaluationServer must be embedded to have
// forward compatible implementations.
type UnimplementedCohortCourseEvaluationServer struct{}

func (UnimplementedCohortCourseEvaluationServer) GetCohortCoursesForTrainer(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCohortCoursesForTrainer not implemented")
}
func (UnimplementedCohortCourseEvaluationServer) GetEvaluationsForTrainee(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEvaluationsForTrainee not implemented")
}
func (UnimplementedCohortCourseEvaluationServer) GetCurrentEvaluationForTrainee(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCurrentEvaluationForTrainee not implemented")
}
func (UnimplementedCohortCourseEvaluationServer) GetEvaluation(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEvaluation not implemented")
}
func (UnimplementedCohortCourseEvaluationServer) GetEvaluationsForCourse(context.Context, *wrapperspb.Int64Value) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEvaluationsForCourse not implemented")
}
func (UnimplementedCohortCourseEvaluationServer) mustEmbedUnimplementedCohortCourseEvaluationServer() {
}

func RegisterCohortCourseEvaluationServer(s grpc.ServiceRegistrar, srv CohortCourseEvaluationServer) {
	s.RegisterService(&CohortCourseEvaluation_ServiceDesc, srv)
}

func _CohortCourseEvaluation_GetCohortCoursesForTrainer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CohortCourseEvaluationServer).GetCohortCoursesForTrainer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CohortCourseEvaluation_GetCohortCoursesForTrainer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CohortCourseEvaluationServer).GetCohortCoursesForTrainer(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _CohortCourseEvaluation_GetEvaluationsForTrainee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CohortCourseEvaluationServer).GetEvaluationsForTrainee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CohortCourseEvaluation_GetEvaluationsForTrainee_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CohortCourseEvaluationServer).GetEvaluationsForTrainee(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _CohortCourseEvaluation_GetCurrentEvaluationForTrainee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CohortCourseEvaluationServer).GetCurrentEvaluationForTrainee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CohortCourseEvaluation_GetCurrentEvaluationForTrainee_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CohortCourseEvaluationServer).GetCurrentEvaluationForTrainee(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _CohortCourseEvaluation_GetEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CohortCourseEvaluationServer).GetEvaluation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CohortCourseEvaluation_GetEvaluation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CohortCourseEvaluationServer).GetEvaluation(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _CohortCourseEvaluation_GetEvaluationsForCourse_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CohortCourseEvaluationServer).GetEvaluationsForCourse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CohortCourseEvaluation_GetEvaluationsForCourse_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CohortCourseEvaluationServer).GetEvaluationsForCourse(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

// CohortCourseEvaluation_ServiceDesc is the grpc.ServiceDesc for the CohortCourseEvaluation service.
var CohortCourseEvaluation_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CohortCourseEvaluationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCohortCoursesForTrainer",
			Handler:    _CohortCourseEvaluation_GetCohortCoursesForTrainer_Handler,
		},
		{
			MethodName: "GetEvaluationsForTrainee",
			Handler:    _CohortCourseEvaluation_GetEvaluationsForTrainee_Handler,
		},
		{
			MethodName: "GetCurrentEvaluationForTrainee",
			Handler:    _CohortCourseEvaluation_GetCurrentEvaluationForTrainee_Handler,
		},
		{
			MethodName: "GetEvaluation",
			Handler:    _CohortCourseEvaluation_GetEvaluation_Handler,
		},
		{
			MethodName: "GetEvaluationsForCourse",
			Handler:    _CohortCourseEvaluation_GetEvaluationsForCourse_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "feedback/v1/cohort_course_evaluation.proto",
}
