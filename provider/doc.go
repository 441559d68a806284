// Package provider defines the small generic provider abstraction voicetext
// builds its transports on.
//
// RequestResponse[I, O] is one input to one output. Adapt bridges a backend
// with types [BI, BO] to a domain interface [I, O], and Middleware wraps a
// provider with cross-cutting behavior:
//
//	sender := provider.Chain(
//	    provider.WithLogging[Upload, *httpclient.Response](log),
//	    provider.WithTracing[Upload, *httpclient.Response]("voicetext"),
//	    provider.WithMetrics[Upload, *httpclient.Response](metrics),
//	)(provider.Adapt(adapter, "deepgram", toRequest, identity))
//
// Closeable is opt-in for providers that hold resources.
package provider
