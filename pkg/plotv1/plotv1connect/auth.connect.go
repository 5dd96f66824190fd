package plotv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	plotv1 "github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1"
)

// AuthServiceName is the fully-qualified name of the AuthService service.
const AuthServiceName = "plot.v1.AuthService"

const (
	AuthServiceRegisterProcedure       = "/plot.v1.AuthService/Register"
	AuthServiceLoginProcedure          = "/plot.v1.AuthService/Login"
	AuthServiceGetCurrentUserProcedure = "/plot.v1.AuthService/GetCurrentUser"
)

// AuthServiceClient is a client for the plot.v1.AuthService service.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[plotv1.RegisterRequest]) (*connect.Response[plotv1.RegisterResponse], error)
	Login(context.Context, *connect.Request[plotv1.LoginRequest]) (*connect.Response[plotv1.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[plotv1.GetCurrentUserRequest]) (*connect.Response[plotv1.GetCurrentUserResponse], error)
}

// NewAuthServiceClient constructs a client for the plot.v1.AuthService service.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		register:       connect.NewClient[plotv1.RegisterRequest, plotv1.RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:          connect.NewClient[plotv1.LoginRequest, plotv1.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[plotv1.GetCurrentUserRequest, plotv1.GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

type authServiceClient struct {
	register       *connect.Client[plotv1.RegisterRequest, plotv1.RegisterResponse]
	login          *connect.Client[plotv1.LoginRequest, plotv1.LoginResponse]
	getCurrentUser *connect.Client[plotv1.GetCurrentUserRequest, plotv1.GetCurrentUserResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[plotv1.RegisterRequest]) (*connect.Response[plotv1.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[plotv1.LoginRequest]) (*connect.Response[plotv1.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[plotv1.GetCurrentUserRequest]) (*connect.Response[plotv1.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// AuthServiceHandler is an implementation of the plot.v1.AuthService service.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[plotv1.RegisterRequest]) (*connect.Response[plotv1.RegisterResponse], error)
	Login(context.Context, *connect.Request[plotv1.LoginRequest]) (*connect.Response[plotv1.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[plotv1.GetCurrentUserRequest]) (*connect.Response[plotv1.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	register := connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...)
	login := connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...)
	getCurrentUser := connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...)
	return "/plot.v1.AuthService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceRegisterProcedure:
			register.ServeHTTP(w, r)
		case AuthServiceLoginProcedure:
			login.ServeHTTP(w, r)
		case AuthServiceGetCurrentUserProcedure:
			getCurrentUser.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Register(context.Context, *connect.Request[plotv1.RegisterRequest]) (*connect.Response[plotv1.RegisterResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.AuthService.Register is not implemented"))
}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[plotv1.LoginRequest]) (*connect.Response[plotv1.LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.AuthService.Login is not implemented"))
}

func (UnimplementedAuthServiceHandler) GetCurrentUser(context.Context, *connect.Request[plotv1.GetCurrentUserRequest]) (*connect.Response[plotv1.GetCurrentUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.AuthService.GetCurrentUser is not implemented"))
}
