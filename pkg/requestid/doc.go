// Package requestid tags each HTTP request with a correlation identifier.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a time-ordered UUID, stores it in the request context and echoes
// it back in the response. LoggerExtractor plugs the identifier into the
// logger package so every record written with the request context carries a
// "request_id" attribute.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
