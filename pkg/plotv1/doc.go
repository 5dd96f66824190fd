// Package plotv1 defines the request and response messages of the plot.v1 Connect API.
//
// Messages are plain structs encoded as JSON by plotv1connect.Codec. Amounts are
// decimal strings ("12.50") so clients never see binary floating point.
package plotv1
