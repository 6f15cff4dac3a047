// Package config loads the web-distributor configuration file.
//
// The configuration names two output roots and the hostname mapping:
//
//	home = "/etc/web-distributor"
//	acme_redirect_configs = "/etc/acme-redirect.d"
//
//	[map]
//	"a.example.com" = "127.0.0.1:8080"
//	"b.example.com" = "10.0.0.12:9090"
//
// The file is TOML unless its name ends in .yaml or .yml, in which case the
// same keys are read as YAML.
//
// # First Run
//
// Load on a path with no file writes the defaults there and returns them,
// leaving the operator a template to edit. Later calls read the file and
// never rewrite it.
//
// # Errors
//
// Unreadable or malformed files, unknown TOML keys, and empty roots return
// errors with code CONFIG. The caller treats these as fatal.
package config
