// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query parameter).
//     An empty key disables the check, and path prefixes can be exempted.
//   - rayid: Tags every request with a ray id stored in the fiber locals and echoed in the
//     X-Ray-ID response header, so logs of one request can be correlated.
//
// Both are registered globally in the serve command, rayid first.
package middleware
