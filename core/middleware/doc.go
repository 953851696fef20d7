// Package middleware groups the Fiber middleware used by the serve command.
//
// Subpackage rayid tags every request with an X-Ray-ID header and stores it in
// c.Locals("ray_id") for logger.WithRayID. Subpackage auth checks the X-API-Key header
// against server.api_key; an empty key leaves the catalog open.
package middleware
