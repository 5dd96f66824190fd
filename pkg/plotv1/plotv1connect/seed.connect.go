package plotv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	plotv1 "github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1"
)

// SeedServiceName is the fully-qualified name of the SeedService service.
const SeedServiceName = "plot.v1.SeedService"

const (
	SeedServiceCreateSeedProcedure     = "/plot.v1.SeedService/CreateSeed"
	SeedServiceUpdateSeedProcedure     = "/plot.v1.SeedService/UpdateSeed"
	SeedServiceDeleteSeedProcedure     = "/plot.v1.SeedService/DeleteSeed"
	SeedServiceListSeedsProcedure      = "/plot.v1.SeedService/ListSeeds"
	SeedServiceMarkSeedPaidProcedure   = "/plot.v1.SeedService/MarkSeedPaid"
	SeedServiceUnmarkSeedPaidProcedure = "/plot.v1.SeedService/UnmarkSeedPaid"
)

// SeedServiceClient is a client for the plot.v1.SeedService service.
type SeedServiceClient interface {
	CreateSeed(context.Context, *connect.Request[plotv1.CreateSeedRequest]) (*connect.Response[plotv1.CreateSeedResponse], error)
	UpdateSeed(context.Context, *connect.Request[plotv1.UpdateSeedRequest]) (*connect.Response[plotv1.UpdateSeedResponse], error)
	DeleteSeed(context.Context, *connect.Request[plotv1.DeleteSeedRequest]) (*connect.Response[plotv1.DeleteSeedResponse], error)
	ListSeeds(context.Context, *connect.Request[plotv1.ListSeedsRequest]) (*connect.Response[plotv1.ListSeedsResponse], error)
	MarkSeedPaid(context.Context, *connect.Request[plotv1.MarkSeedPaidRequest]) (*connect.Response[plotv1.MarkSeedPaidResponse], error)
	UnmarkSeedPaid(context.Context, *connect.Request[plotv1.UnmarkSeedPaidRequest]) (*connect.Response[plotv1.UnmarkSeedPaidResponse], error)
}

// NewSeedServiceClient constructs a client for the plot.v1.SeedService service.
func NewSeedServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SeedServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &seedServiceClient{
		createSeed:     connect.NewClient[plotv1.CreateSeedRequest, plotv1.CreateSeedResponse](httpClient, baseURL+SeedServiceCreateSeedProcedure, opts...),
		updateSeed:     connect.NewClient[plotv1.UpdateSeedRequest, plotv1.UpdateSeedResponse](httpClient, baseURL+SeedServiceUpdateSeedProcedure, opts...),
		deleteSeed:     connect.NewClient[plotv1.DeleteSeedRequest, plotv1.DeleteSeedResponse](httpClient, baseURL+SeedServiceDeleteSeedProcedure, opts...),
		listSeeds:      connect.NewClient[plotv1.ListSeedsRequest, plotv1.ListSeedsResponse](httpClient, baseURL+SeedServiceListSeedsProcedure, opts...),
		markSeedPaid:   connect.NewClient[plotv1.MarkSeedPaidRequest, plotv1.MarkSeedPaidResponse](httpClient, baseURL+SeedServiceMarkSeedPaidProcedure, opts...),
		unmarkSeedPaid: connect.NewClient[plotv1.UnmarkSeedPaidRequest, plotv1.UnmarkSeedPaidResponse](httpClient, baseURL+SeedServiceUnmarkSeedPaidProcedure, opts...),
	}
}

type seedServiceClient struct {
	createSeed     *connect.Client[plotv1.CreateSeedRequest, plotv1.CreateSeedResponse]
	updateSeed     *connect.Client[plotv1.UpdateSeedRequest, plotv1.UpdateSeedResponse]
	deleteSeed     *connect.Client[plotv1.DeleteSeedRequest, plotv1.DeleteSeedResponse]
	listSeeds      *connect.Client[plotv1.ListSeedsRequest, plotv1.ListSeedsResponse]
	markSeedPaid   *connect.Client[plotv1.MarkSeedPaidRequest, plotv1.MarkSeedPaidResponse]
	unmarkSeedPaid *connect.Client[plotv1.UnmarkSeedPaidRequest, plotv1.UnmarkSeedPaidResponse]
}

func (c *seedServiceClient) CreateSeed(ctx context.Context, req *connect.Request[plotv1.CreateSeedRequest]) (*connect.Response[plotv1.CreateSeedResponse], error) {
	return c.createSeed.CallUnary(ctx, req)
}

func (c *seedServiceClient) UpdateSeed(ctx context.Context, req *connect.Request[plotv1.UpdateSeedRequest]) (*connect.Response[plotv1.UpdateSeedResponse], error) {
	return c.updateSeed.CallUnary(ctx, req)
}

func (c *seedServiceClient) DeleteSeed(ctx context.Context, req *connect.Request[plotv1.DeleteSeedRequest]) (*connect.Response[plotv1.DeleteSeedResponse], error) {
	return c.deleteSeed.CallUnary(ctx, req)
}

func (c *seedServiceClient) ListSeeds(ctx context.Context, req *connect.Request[plotv1.ListSeedsRequest]) (*connect.Response[plotv1.ListSeedsResponse], error) {
	return c.listSeeds.CallUnary(ctx, req)
}

func (c *seedServiceClient) MarkSeedPaid(ctx context.Context, req *connect.Request[plotv1.MarkSeedPaidRequest]) (*connect.Response[plotv1.MarkSeedPaidResponse], error) {
	return c.markSeedPaid.CallUnary(ctx, req)
}

func (c *seedServiceClient) UnmarkSeedPaid(ctx context.Context, req *connect.Request[plotv1.UnmarkSeedPaidRequest]) (*connect.Response[plotv1.UnmarkSeedPaidResponse], error) {
	return c.unmarkSeedPaid.CallUnary(ctx, req)
}

// SeedServiceHandler is an implementation of the plot.v1.SeedService service.
type SeedServiceHandler interface {
	CreateSeed(context.Context, *connect.Request[plotv1.CreateSeedRequest]) (*connect.Response[plotv1.CreateSeedResponse], error)
	UpdateSeed(context.Context, *connect.Request[plotv1.UpdateSeedRequest]) (*connect.Response[plotv1.UpdateSeedResponse], error)
	DeleteSeed(context.Context, *connect.Request[plotv1.DeleteSeedRequest]) (*connect.Response[plotv1.DeleteSeedResponse], error)
	ListSeeds(context.Context, *connect.Request[plotv1.ListSeedsRequest]) (*connect.Response[plotv1.ListSeedsResponse], error)
	MarkSeedPaid(context.Context, *connect.Request[plotv1.MarkSeedPaidRequest]) (*connect.Response[plotv1.MarkSeedPaidResponse], error)
	UnmarkSeedPaid(context.Context, *connect.Request[plotv1.UnmarkSeedPaidRequest]) (*connect.Response[plotv1.UnmarkSeedPaidResponse], error)
}

// NewSeedServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewSeedServiceHandler(svc SeedServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createSeed := connect.NewUnaryHandler(SeedServiceCreateSeedProcedure, svc.CreateSeed, opts...)
	updateSeed := connect.NewUnaryHandler(SeedServiceUpdateSeedProcedure, svc.UpdateSeed, opts...)
	deleteSeed := connect.NewUnaryHandler(SeedServiceDeleteSeedProcedure, svc.DeleteSeed, opts...)
	listSeeds := connect.NewUnaryHandler(SeedServiceListSeedsProcedure, svc.ListSeeds, opts...)
	markSeedPaid := connect.NewUnaryHandler(SeedServiceMarkSeedPaidProcedure, svc.MarkSeedPaid, opts...)
	unmarkSeedPaid := connect.NewUnaryHandler(SeedServiceUnmarkSeedPaidProcedure, svc.UnmarkSeedPaid, opts...)
	return "/plot.v1.SeedService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SeedServiceCreateSeedProcedure:
			createSeed.ServeHTTP(w, r)
		case SeedServiceUpdateSeedProcedure:
			updateSeed.ServeHTTP(w, r)
		case SeedServiceDeleteSeedProcedure:
			deleteSeed.ServeHTTP(w, r)
		case SeedServiceListSeedsProcedure:
			listSeeds.ServeHTTP(w, r)
		case SeedServiceMarkSeedPaidProcedure:
			markSeedPaid.ServeHTTP(w, r)
		case SeedServiceUnmarkSeedPaidProcedure:
			unmarkSeedPaid.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSeedServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSeedServiceHandler struct{}

func (UnimplementedSeedServiceHandler) CreateSeed(context.Context, *connect.Request[plotv1.CreateSeedRequest]) (*connect.Response[plotv1.CreateSeedResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.SeedService.CreateSeed is not implemented"))
}

func (UnimplementedSeedServiceHandler) UpdateSeed(context.Context, *connect.Request[plotv1.UpdateSeedRequest]) (*connect.Response[plotv1.UpdateSeedResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.SeedService.UpdateSeed is not implemented"))
}

func (UnimplementedSeedServiceHandler) DeleteSeed(context.Context, *connect.Request[plotv1.DeleteSeedRequest]) (*connect.Response[plotv1.DeleteSeedResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.SeedService.DeleteSeed is not implemented"))
}

func (UnimplementedSeedServiceHandler) ListSeeds(context.Context, *connect.Request[plotv1.ListSeedsRequest]) (*connect.Response[plotv1.ListSeedsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.SeedService.ListSeeds is not implemented"))
}

func (UnimplementedSeedServiceHandler) MarkSeedPaid(context.Context, *connect.Request[plotv1.MarkSeedPaidRequest]) (*connect.Response[plotv1.MarkSeedPaidResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.SeedService.MarkSeedPaid is not implemented"))
}

func (UnimplementedSeedServiceHandler) UnmarkSeedPaid(context.Context, *connect.Request[plotv1.UnmarkSeedPaidRequest]) (*connect.Response[plotv1.UnmarkSeedPaidResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.SeedService.UnmarkSeedPaid is not implemented"))
}
