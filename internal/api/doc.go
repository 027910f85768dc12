// Package api implements the route handlers. Every handler follows the
// same protocol: extract path and body parameters, invoke one
// repository operation (two for the invoice and player append routes),
// and map the outcome onto the API's historical status codes: 200 on
// success, 401 where a lookup found nothing and the route cares, 501
// for store faults, 500 for everything else.
package api
