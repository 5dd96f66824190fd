package plotv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	plotv1 "github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1"
)

// PaycycleServiceName is the fully-qualified name of the PaycycleService service.
const PaycycleServiceName = "plot.v1.PaycycleService"

const (
	PaycycleServiceGetPaycycleProcedure           = "/plot.v1.PaycycleService/GetPaycycle"
	PaycycleServiceListPaycyclesProcedure         = "/plot.v1.PaycycleService/ListPaycycles"
	PaycycleServiceCreateNextPaycycleProcedure    = "/plot.v1.PaycycleService/CreateNextPaycycle"
	PaycycleServiceResyncDraftFromActiveProcedure = "/plot.v1.PaycycleService/ResyncDraftFromActive"
	PaycycleServiceStartNextCycleProcedure        = "/plot.v1.PaycycleService/StartNextCycle"
	PaycycleServiceCloseRitualProcedure           = "/plot.v1.PaycycleService/CloseRitual"
	PaycycleServiceUnlockRitualProcedure          = "/plot.v1.PaycycleService/UnlockRitual"
)

// PaycycleServiceClient is a client for the plot.v1.PaycycleService service.
type PaycycleServiceClient interface {
	GetPaycycle(context.Context, *connect.Request[plotv1.GetPaycycleRequest]) (*connect.Response[plotv1.GetPaycycleResponse], error)
	ListPaycycles(context.Context, *connect.Request[plotv1.ListPaycyclesRequest]) (*connect.Response[plotv1.ListPaycyclesResponse], error)
	CreateNextPaycycle(context.Context, *connect.Request[plotv1.CreateNextPaycycleRequest]) (*connect.Response[plotv1.CreateNextPaycycleResponse], error)
	ResyncDraftFromActive(context.Context, *connect.Request[plotv1.ResyncDraftFromActiveRequest]) (*connect.Response[plotv1.ResyncDraftFromActiveResponse], error)
	StartNextCycle(context.Context, *connect.Request[plotv1.StartNextCycleRequest]) (*connect.Response[plotv1.StartNextCycleResponse], error)
	CloseRitual(context.Context, *connect.Request[plotv1.CloseRitualRequest]) (*connect.Response[plotv1.CloseRitualResponse], error)
	UnlockRitual(context.Context, *connect.Request[plotv1.UnlockRitualRequest]) (*connect.Response[plotv1.UnlockRitualResponse], error)
}

// NewPaycycleServiceClient constructs a client for the plot.v1.PaycycleService service.
func NewPaycycleServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PaycycleServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &paycycleServiceClient{
		getPaycycle:           connect.NewClient[plotv1.GetPaycycleRequest, plotv1.GetPaycycleResponse](httpClient, baseURL+PaycycleServiceGetPaycycleProcedure, opts...),
		listPaycycles:         connect.NewClient[plotv1.ListPaycyclesRequest, plotv1.ListPaycyclesResponse](httpClient, baseURL+PaycycleServiceListPaycyclesProcedure, opts...),
		createNextPaycycle:    connect.NewClient[plotv1.CreateNextPaycycleRequest, plotv1.CreateNextPaycycleResponse](httpClient, baseURL+PaycycleServiceCreateNextPaycycleProcedure, opts...),
		resyncDraftFromActive: connect.NewClient[plotv1.ResyncDraftFromActiveRequest, plotv1.ResyncDraftFromActiveResponse](httpClient, baseURL+PaycycleServiceResyncDraftFromActiveProcedure, opts...),
		startNextCycle:        connect.NewClient[plotv1.StartNextCycleRequest, plotv1.StartNextCycleResponse](httpClient, baseURL+PaycycleServiceStartNextCycleProcedure, opts...),
		closeRitual:           connect.NewClient[plotv1.CloseRitualRequest, plotv1.CloseRitualResponse](httpClient, baseURL+PaycycleServiceCloseRitualProcedure, opts...),
		unlockRitual:          connect.NewClient[plotv1.UnlockRitualRequest, plotv1.UnlockRitualResponse](httpClient, baseURL+PaycycleServiceUnlockRitualProcedure, opts...),
	}
}

type paycycleServiceClient struct {
	getPaycycle           *connect.Client[plotv1.GetPaycycleRequest, plotv1.GetPaycycleResponse]
	listPaycycles         *connect.Client[plotv1.ListPaycyclesRequest, plotv1.ListPaycyclesResponse]
	createNextPaycycle    *connect.Client[plotv1.CreateNextPaycycleRequest, plotv1.CreateNextPaycycleResponse]
	resyncDraftFromActive *connect.Client[plotv1.ResyncDraftFromActiveRequest, plotv1.ResyncDraftFromActiveResponse]
	startNextCycle        *connect.Client[plotv1.StartNextCycleRequest, plotv1.StartNextCycleResponse]
	closeRitual           *connect.Client[plotv1.CloseRitualRequest, plotv1.CloseRitualResponse]
	unlockRitual          *connect.Client[plotv1.UnlockRitualRequest, plotv1.UnlockRitualResponse]
}

func (c *paycycleServiceClient) GetPaycycle(ctx context.Context, req *connect.Request[plotv1.GetPaycycleRequest]) (*connect.Response[plotv1.GetPaycycleResponse], error) {
	return c.getPaycycle.CallUnary(ctx, req)
}

func (c *paycycleServiceClient) ListPaycycles(ctx context.Context, req *connect.Request[plotv1.ListPaycyclesRequest]) (*connect.Response[plotv1.ListPaycyclesResponse], error) {
	return c.listPaycycles.CallUnary(ctx, req)
}

func (c *paycycleServiceClient) CreateNextPaycycle(ctx context.Context, req *connect.Request[plotv1.CreateNextPaycycleRequest]) (*connect.Response[plotv1.CreateNextPaycycleResponse], error) {
	return c.createNextPaycycle.CallUnary(ctx, req)
}

func (c *paycycleServiceClient) ResyncDraftFromActive(ctx context.Context, req *connect.Request[plotv1.ResyncDraftFromActiveRequest]) (*connect.Response[plotv1.ResyncDraftFromActiveResponse], error) {
	return c.resyncDraftFromActive.CallUnary(ctx, req)
}

func (c *paycycleServiceClient) StartNextCycle(ctx context.Context, req *connect.Request[plotv1.StartNextCycleRequest]) (*connect.Response[plotv1.StartNextCycleResponse], error) {
	return c.startNextCycle.CallUnary(ctx, req)
}

func (c *paycycleServiceClient) CloseRitual(ctx context.Context, req *connect.Request[plotv1.CloseRitualRequest]) (*connect.Response[plotv1.CloseRitualResponse], error) {
	return c.closeRitual.CallUnary(ctx, req)
}

func (c *paycycleServiceClient) UnlockRitual(ctx context.Context, req *connect.Request[plotv1.UnlockRitualRequest]) (*connect.Response[plotv1.UnlockRitualResponse], error) {
	return c.unlockRitual.CallUnary(ctx, req)
}

// PaycycleServiceHandler is an implementation of the plot.v1.PaycycleService service.
type PaycycleServiceHandler interface {
	GetPaycycle(context.Context, *connect.Request[plotv1.GetPaycycleRequest]) (*connect.Response[plotv1.GetPaycycleResponse], error)
	ListPaycycles(context.Context, *connect.Request[plotv1.ListPaycyclesRequest]) (*connect.Response[plotv1.ListPaycyclesResponse], error)
	CreateNextPaycycle(context.Context, *connect.Request[plotv1.CreateNextPaycycleRequest]) (*connect.Response[plotv1.CreateNextPaycycleResponse], error)
	ResyncDraftFromActive(context.Context, *connect.Request[plotv1.ResyncDraftFromActiveRequest]) (*connect.Response[plotv1.ResyncDraftFromActiveResponse], error)
	StartNextCycle(context.Context, *connect.Request[plotv1.StartNextCycleRequest]) (*connect.Response[plotv1.StartNextCycleResponse], error)
	CloseRitual(context.Context, *connect.Request[plotv1.CloseRitualRequest]) (*connect.Response[plotv1.CloseRitualResponse], error)
	UnlockRitual(context.Context, *connect.Request[plotv1.UnlockRitualRequest]) (*connect.Response[plotv1.UnlockRitualResponse], error)
}

// NewPaycycleServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewPaycycleServiceHandler(svc PaycycleServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getPaycycle := connect.NewUnaryHandler(PaycycleServiceGetPaycycleProcedure, svc.GetPaycycle, opts...)
	listPaycycles := connect.NewUnaryHandler(PaycycleServiceListPaycyclesProcedure, svc.ListPaycycles, opts...)
	createNextPaycycle := connect.NewUnaryHandler(PaycycleServiceCreateNextPaycycleProcedure, svc.CreateNextPaycycle, opts...)
	resyncDraftFromActive := connect.NewUnaryHandler(PaycycleServiceResyncDraftFromActiveProcedure, svc.ResyncDraftFromActive, opts...)
	startNextCycle := connect.NewUnaryHandler(PaycycleServiceStartNextCycleProcedure, svc.StartNextCycle, opts...)
	closeRitual := connect.NewUnaryHandler(PaycycleServiceCloseRitualProcedure, svc.CloseRitual, opts...)
	unlockRitual := connect.NewUnaryHandler(PaycycleServiceUnlockRitualProcedure, svc.UnlockRitual, opts...)
	return "/plot.v1.PaycycleService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PaycycleServiceGetPaycycleProcedure:
			getPaycycle.ServeHTTP(w, r)
		case PaycycleServiceListPaycyclesProcedure:
			listPaycycles.ServeHTTP(w, r)
		case PaycycleServiceCreateNextPaycycleProcedure:
			createNextPaycycle.ServeHTTP(w, r)
		case PaycycleServiceResyncDraftFromActiveProcedure:
			resyncDraftFromActive.ServeHTTP(w, r)
		case PaycycleServiceStartNextCycleProcedure:
			startNextCycle.ServeHTTP(w, r)
		case PaycycleServiceCloseRitualProcedure:
			closeRitual.ServeHTTP(w, r)
		case PaycycleServiceUnlockRitualProcedure:
			unlockRitual.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedPaycycleServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPaycycleServiceHandler struct{}

func (UnimplementedPaycycleServiceHandler) GetPaycycle(context.Context, *connect.Request[plotv1.GetPaycycleRequest]) (*connect.Response[plotv1.GetPaycycleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.PaycycleService.GetPaycycle is not implemented"))
}

func (UnimplementedPaycycleServiceHandler) ListPaycycles(context.Context, *connect.Request[plotv1.ListPaycyclesRequest]) (*connect.Response[plotv1.ListPaycyclesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.PaycycleService.ListPaycycles is not implemented"))
}

func (UnimplementedPaycycleServiceHandler) CreateNextPaycycle(context.Context, *connect.Request[plotv1.CreateNextPaycycleRequest]) (*connect.Response[plotv1.CreateNextPaycycleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.PaycycleService.CreateNextPaycycle is not implemented"))
}

func (UnimplementedPaycycleServiceHandler) ResyncDraftFromActive(context.Context, *connect.Request[plotv1.ResyncDraftFromActiveRequest]) (*connect.Response[plotv1.ResyncDraftFromActiveResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.PaycycleService.ResyncDraftFromActive is not implemented"))
}

func (UnimplementedPaycycleServiceHandler) StartNextCycle(context.Context, *connect.Request[plotv1.StartNextCycleRequest]) (*connect.Response[plotv1.StartNextCycleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.PaycycleService.StartNextCycle is not implemented"))
}

func (UnimplementedPaycycleServiceHandler) CloseRitual(context.Context, *connect.Request[plotv1.CloseRitualRequest]) (*connect.Response[plotv1.CloseRitualResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.PaycycleService.CloseRitual is not implemented"))
}

func (UnimplementedPaycycleServiceHandler) UnlockRitual(context.Context, *connect.Request[plotv1.UnlockRitualRequest]) (*connect.Response[plotv1.UnlockRitualResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.PaycycleService.UnlockRitual is not implemented"))
}
