// Package quota meters free usage per client with a fixed-window counter and
// gates HTTP handlers on it.
//
// A Meter reserves a use before the work runs (Reserve) and hands it back
// when the work fails (Release). The reservation is a single atomic store
// increment, so concurrent requests from one client cannot overrun the
// limit. Middleware wraps both: exhausted clients get 402 and a sign-up URL,
// and non-2xx responses are refunded.
//
// Counters live in a Store. MemoryStore suits a single instance; RedisStore
// shares counters across instances.
//
// The key is whatever KeyFunc returns. The serve command keys on the socket
// address unless QUOTA_TRUST_PROXY is set. clientip.GetIP reads forwarding
// headers such as X-Forwarded-For, which a client can set freely, so enable
// it only behind a proxy that overwrites them.
package quota
