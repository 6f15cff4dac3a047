// Package template renders the two files web-distributor emits per mapping
// entry, from templates embedded in the binary.
//
// # Templates
//
//	nginx/proxy.tmpl   TLS-terminating reverse proxy server block
//	acme/cert.tmpl     acme-redirect certificate request
//
// # Rendering
//
//	proxy, err := template.RenderProxyHost("a.example.com", "127.0.0.1:8080")
//	cert, err := template.RenderCertRequest("a.example.com")
//
// The proxy host reads its certificate, key, and chain from
// /var/lib/acme-redirect/live/<source>/, which is where acme-redirect places
// the material requested by the matching cert request. Only the proxy_pass
// line depends on the target.
//
// The certificate request names the source as both the cert name and its
// only DNS name, and asks acme-redirect to reload nginx after issuance.
//
// Inputs are not validated. A malformed hostname or target produces a
// malformed file.
package template
