package template

import (
	"embed"
	"text/template"
)

//go:embed nginx/*.tmpl
var nginxTemplates embed.FS

//go:embed acme/*.tmpl
var acmeTemplates embed.FS

// Parsed once; a broken embedded template is a build defect, not a runtime condition.
var (
	proxyHostTmpl   = template.Must(template.New("proxy.tmpl").ParseFS(nginxTemplates, "nginx/proxy.tmpl"))
	certRequestTmpl = template.Must(template.New("cert.tmpl").ParseFS(acmeTemplates, "acme/cert.tmpl"))
)
