// Package observability provides OpenTelemetry tracing and metrics for
// voicetext.
//
// Exporters are only started when enabled in configuration; otherwise the
// global no-op providers stay in place and instruments cost nothing.
//
//	obs, err := observability.Setup(ctx, cfg.Observability, observability.Resource{
//	    ServiceName: cfg.Name, ServiceVersion: version.Get().Version,
//	})
//	defer obs.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "deepgram.listen")
//	defer span.End()
//	obs.Metrics.RecordTranscription(ctx, "deepgram", "ok", elapsed, len(audio))
package observability
