// Package api provides a read-only REST API over the configured newsletter lists.
//
// The API lets other processes resolve list names without reading the
// configuration themselves. It never talks to the email-marketing provider.
//
// # Endpoints
//
//	GET  /api/v1/lists          all lists and the default list name
//	GET  /api/v1/default-list   the default list
//	GET  /api/v1/lists/{name}   a list by name
//	GET  /api/v1/status         configuration hashes and reload state
//	POST /api/v1/reload         re-read the configuration file
//	GET  /health                configuration health
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": {"name": "subscribers", "id": "abc123", "default": true}
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "not_found",
//	    "message": "list `foo` could not be found",
//	    "details": {"list_name": "foo", "reason": "not_found"}
//	  }
//	}
//
// Every response carries an X-Request-ID header; a value sent by the client
// is reused, otherwise a UUID is generated. The ID prefixes the request log line.
package api
