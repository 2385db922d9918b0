// CLAUDE:SUMMARY Context enrichment keys threaded through tool endpoints.
package kit

import "context"

type contextKey string

const (
	TransportKey contextKey = "kit_transport"
	RequestIDKey contextKey = "kit_request_id"
	BlockIDKey   contextKey = "kit_block_id"
)

func WithTransport(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, TransportKey, t)
}

func GetTransport(ctx context.Context) string {
	v, _ := ctx.Value(TransportKey).(string)
	return v
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(RequestIDKey).(string)
	return v
}

// WithBlockID tags the context with the content block an operation concerns,
// so persistence traces carry the block through every layer.
func WithBlockID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, BlockIDKey, id)
}

func GetBlockID(ctx context.Context) string {
	v, _ := ctx.Value(BlockIDKey).(string)
	return v
}
