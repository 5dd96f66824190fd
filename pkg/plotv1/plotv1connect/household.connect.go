package plotv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	plotv1 "github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1"
)

// HouseholdServiceName is the fully-qualified name of the HouseholdService service.
const HouseholdServiceName = "plot.v1.HouseholdService"

const (
	HouseholdServiceCreateHouseholdProcedure = "/plot.v1.HouseholdService/CreateHousehold"
	HouseholdServiceGetHouseholdProcedure    = "/plot.v1.HouseholdService/GetHousehold"
	HouseholdServiceUpdateHouseholdProcedure = "/plot.v1.HouseholdService/UpdateHousehold"
	HouseholdServiceLinkPartnerProcedure     = "/plot.v1.HouseholdService/LinkPartner"
	HouseholdServiceCreatePotProcedure       = "/plot.v1.HouseholdService/CreatePot"
	HouseholdServiceListPotsProcedure        = "/plot.v1.HouseholdService/ListPots"
	HouseholdServiceCreateRepaymentProcedure = "/plot.v1.HouseholdService/CreateRepayment"
	HouseholdServiceListRepaymentsProcedure  = "/plot.v1.HouseholdService/ListRepayments"
)

// HouseholdServiceClient is a client for the plot.v1.HouseholdService service.
type HouseholdServiceClient interface {
	CreateHousehold(context.Context, *connect.Request[plotv1.CreateHouseholdRequest]) (*connect.Response[plotv1.CreateHouseholdResponse], error)
	GetHousehold(context.Context, *connect.Request[plotv1.GetHouseholdRequest]) (*connect.Response[plotv1.GetHouseholdResponse], error)
	UpdateHousehold(context.Context, *connect.Request[plotv1.UpdateHouseholdRequest]) (*connect.Response[plotv1.UpdateHouseholdResponse], error)
	LinkPartner(context.Context, *connect.Request[plotv1.LinkPartnerRequest]) (*connect.Response[plotv1.LinkPartnerResponse], error)
	CreatePot(context.Context, *connect.Request[plotv1.CreatePotRequest]) (*connect.Response[plotv1.CreatePotResponse], error)
	ListPots(context.Context, *connect.Request[plotv1.ListPotsRequest]) (*connect.Response[plotv1.ListPotsResponse], error)
	CreateRepayment(context.Context, *connect.Request[plotv1.CreateRepaymentRequest]) (*connect.Response[plotv1.CreateRepaymentResponse], error)
	ListRepayments(context.Context, *connect.Request[plotv1.ListRepaymentsRequest]) (*connect.Response[plotv1.ListRepaymentsResponse], error)
}

// NewHouseholdServiceClient constructs a client for the plot.v1.HouseholdService service.
func NewHouseholdServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) HouseholdServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &householdServiceClient{
		createHousehold: connect.NewClient[plotv1.CreateHouseholdRequest, plotv1.CreateHouseholdResponse](httpClient, baseURL+HouseholdServiceCreateHouseholdProcedure, opts...),
		getHousehold:    connect.NewClient[plotv1.GetHouseholdRequest, plotv1.GetHouseholdResponse](httpClient, baseURL+HouseholdServiceGetHouseholdProcedure, opts...),
		updateHousehold: connect.NewClient[plotv1.UpdateHouseholdRequest, plotv1.UpdateHouseholdResponse](httpClient, baseURL+HouseholdServiceUpdateHouseholdProcedure, opts...),
		linkPartner:     connect.NewClient[plotv1.LinkPartnerRequest, plotv1.LinkPartnerResponse](httpClient, baseURL+HouseholdServiceLinkPartnerProcedure, opts...),
		createPot:       connect.NewClient[plotv1.CreatePotRequest, plotv1.CreatePotResponse](httpClient, baseURL+HouseholdServiceCreatePotProcedure, opts...),
		listPots:        connect.NewClient[plotv1.ListPotsRequest, plotv1.ListPotsResponse](httpClient, baseURL+HouseholdServiceListPotsProcedure, opts...),
		createRepayment: connect.NewClient[plotv1.CreateRepaymentRequest, plotv1.CreateRepaymentResponse](httpClient, baseURL+HouseholdServiceCreateRepaymentProcedure, opts...),
		listRepayments:  connect.NewClient[plotv1.ListRepaymentsRequest, plotv1.ListRepaymentsResponse](httpClient, baseURL+HouseholdServiceListRepaymentsProcedure, opts...),
	}
}

type householdServiceClient struct {
	createHousehold *connect.Client[plotv1.CreateHouseholdRequest, plotv1.CreateHouseholdResponse]
	getHousehold    *connect.Client[plotv1.GetHouseholdRequest, plotv1.GetHouseholdResponse]
	updateHousehold *connect.Client[plotv1.UpdateHouseholdRequest, plotv1.UpdateHouseholdResponse]
	linkPartner     *connect.Client[plotv1.LinkPartnerRequest, plotv1.LinkPartnerResponse]
	createPot       *connect.Client[plotv1.CreatePotRequest, plotv1.CreatePotResponse]
	listPots        *connect.Client[plotv1.ListPotsRequest, plotv1.ListPotsResponse]
	createRepayment *connect.Client[plotv1.CreateRepaymentRequest, plotv1.CreateRepaymentResponse]
	listRepayments  *connect.Client[plotv1.ListRepaymentsRequest, plotv1.ListRepaymentsResponse]
}

func (c *householdServiceClient) CreateHousehold(ctx context.Context, req *connect.Request[plotv1.CreateHouseholdRequest]) (*connect.Response[plotv1.CreateHouseholdResponse], error) {
	return c.createHousehold.CallUnary(ctx, req)
}

func (c *householdServiceClient) GetHousehold(ctx context.Context, req *connect.Request[plotv1.GetHouseholdRequest]) (*connect.Response[plotv1.GetHouseholdResponse], error) {
	return c.getHousehold.CallUnary(ctx, req)
}

func (c *householdServiceClient) UpdateHousehold(ctx context.Context, req *connect.Request[plotv1.UpdateHouseholdRequest]) (*connect.Response[plotv1.UpdateHouseholdResponse], error) {
	return c.updateHousehold.CallUnary(ctx, req)
}

func (c *householdServiceClient) LinkPartner(ctx context.Context, req *connect.Request[plotv1.LinkPartnerRequest]) (*connect.Response[plotv1.LinkPartnerResponse], error) {
	return c.linkPartner.CallUnary(ctx, req)
}

func (c *householdServiceClient) CreatePot(ctx context.Context, req *connect.Request[plotv1.CreatePotRequest]) (*connect.Response[plotv1.CreatePotResponse], error) {
	return c.createPot.CallUnary(ctx, req)
}

func (c *householdServiceClient) ListPots(ctx context.Context, req *connect.Request[plotv1.ListPotsRequest]) (*connect.Response[plotv1.ListPotsResponse], error) {
	return c.listPots.CallUnary(ctx, req)
}

func (c *householdServiceClient) CreateRepayment(ctx context.Context, req *connect.Request[plotv1.CreateRepaymentRequest]) (*connect.Response[plotv1.CreateRepaymentResponse], error) {
	return c.createRepayment.CallUnary(ctx, req)
}

func (c *householdServiceClient) ListRepayments(ctx context.Context, req *connect.Request[plotv1.ListRepaymentsRequest]) (*connect.Response[plotv1.ListRepaymentsResponse], error) {
	return c.listRepayments.CallUnary(ctx, req)
}

// HouseholdServiceHandler is an implementation of the plot.v1.HouseholdService service.
type HouseholdServiceHandler interface {
	CreateHousehold(context.Context, *connect.Request[plotv1.CreateHouseholdRequest]) (*connect.Response[plotv1.CreateHouseholdResponse], error)
	GetHousehold(context.Context, *connect.Request[plotv1.GetHouseholdRequest]) (*connect.Response[plotv1.GetHouseholdResponse], error)
	UpdateHousehold(context.Context, *connect.Request[plotv1.UpdateHouseholdRequest]) (*connect.Response[plotv1.UpdateHouseholdResponse], error)
	LinkPartner(context.Context, *connect.Request[plotv1.LinkPartnerRequest]) (*connect.Response[plotv1.LinkPartnerResponse], error)
	CreatePot(context.Context, *connect.Request[plotv1.CreatePotRequest]) (*connect.Response[plotv1.CreatePotResponse], error)
	ListPots(context.Context, *connect.Request[plotv1.ListPotsRequest]) (*connect.Response[plotv1.ListPotsResponse], error)
	CreateRepayment(context.Context, *connect.Request[plotv1.CreateRepaymentRequest]) (*connect.Response[plotv1.CreateRepaymentResponse], error)
	ListRepayments(context.Context, *connect.Request[plotv1.ListRepaymentsRequest]) (*connect.Response[plotv1.ListRepaymentsResponse], error)
}

// NewHouseholdServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewHouseholdServiceHandler(svc HouseholdServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createHousehold := connect.NewUnaryHandler(HouseholdServiceCreateHouseholdProcedure, svc.CreateHousehold, opts...)
	getHousehold := connect.NewUnaryHandler(HouseholdServiceGetHouseholdProcedure, svc.GetHousehold, opts...)
	updateHousehold := connect.NewUnaryHandler(HouseholdServiceUpdateHouseholdProcedure, svc.UpdateHousehold, opts...)
	linkPartner := connect.NewUnaryHandler(HouseholdServiceLinkPartnerProcedure, svc.LinkPartner, opts...)
	createPot := connect.NewUnaryHandler(HouseholdServiceCreatePotProcedure, svc.CreatePot, opts...)
	listPots := connect.NewUnaryHandler(HouseholdServiceListPotsProcedure, svc.ListPots, opts...)
	createRepayment := connect.NewUnaryHandler(HouseholdServiceCreateRepaymentProcedure, svc.CreateRepayment, opts...)
	listRepayments := connect.NewUnaryHandler(HouseholdServiceListRepaymentsProcedure, svc.ListRepayments, opts...)
	return "/plot.v1.HouseholdService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case HouseholdServiceCreateHouseholdProcedure:
			createHousehold.ServeHTTP(w, r)
		case HouseholdServiceGetHouseholdProcedure:
			getHousehold.ServeHTTP(w, r)
		case HouseholdServiceUpdateHouseholdProcedure:
			updateHousehold.ServeHTTP(w, r)
		case HouseholdServiceLinkPartnerProcedure:
			linkPartner.ServeHTTP(w, r)
		case HouseholdServiceCreatePotProcedure:
			createPot.ServeHTTP(w, r)
		case HouseholdServiceListPotsProcedure:
			listPots.ServeHTTP(w, r)
		case HouseholdServiceCreateRepaymentProcedure:
			createRepayment.ServeHTTP(w, r)
		case HouseholdServiceListRepaymentsProcedure:
			listRepayments.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedHouseholdServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedHouseholdServiceHandler struct{}

func (UnimplementedHouseholdServiceHandler) CreateHousehold(context.Context, *connect.Request[plotv1.CreateHouseholdRequest]) (*connect.Response[plotv1.CreateHouseholdResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.HouseholdService.CreateHousehold is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) GetHousehold(context.Context, *connect.Request[plotv1.GetHouseholdRequest]) (*connect.Response[plotv1.GetHouseholdResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.HouseholdService.GetHousehold is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) UpdateHousehold(context.Context, *connect.Request[plotv1.UpdateHouseholdRequest]) (*connect.Response[plotv1.UpdateHouseholdResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.HouseholdService.UpdateHousehold is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) LinkPartner(context.Context, *connect.Request[plotv1.LinkPartnerRequest]) (*connect.Response[plotv1.LinkPartnerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.HouseholdService.LinkPartner is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) CreatePot(context.Context, *connect.Request[plotv1.CreatePotRequest]) (*connect.Response[plotv1.CreatePotResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.HouseholdService.CreatePot is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) ListPots(context.Context, *connect.Request[plotv1.ListPotsRequest]) (*connect.Response[plotv1.ListPotsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.HouseholdService.ListPots is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) CreateRepayment(context.Context, *connect.Request[plotv1.CreateRepaymentRequest]) (*connect.Response[plotv1.CreateRepaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.HouseholdService.CreateRepayment is not implemented"))
}

func (UnimplementedHouseholdServiceHandler) ListRepayments(context.Context, *connect.Request[plotv1.ListRepaymentsRequest]) (*connect.Response[plotv1.ListRepaymentsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("plot.v1.HouseholdService.ListRepayments is not implemented"))
}
