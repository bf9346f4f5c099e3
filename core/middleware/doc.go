// Package middleware groups the HTTP middleware of the API.
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: assigns a RayID to every request, stored in the context and
//     echoed in the X-Ray-ID response header for log correlation.
package middleware
