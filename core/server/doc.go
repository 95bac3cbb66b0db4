// Package server holds the HTTP server configuration.
//
// While the start command handles the server lifecycle, this package defines
// the listening port and the page-size bounds enforced by the sync and debug
// endpoints. The maximum page size can be lowered by configuration but never
// raised above HardMaxLimit (100), since page size is the only throttle on the
// detail fan-out.
package server
