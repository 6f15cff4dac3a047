package template

import (
	"bytes"
	"path"
	"text/template"

	"github.com/ksyq12/web-distributor/internal/errors"
)

// acme-redirect keeps issued material under this directory, one subdirectory per cert name.
const acmeLiveDir = "/var/lib/acme-redirect/live"

// ReloadCommand is run by acme-redirect after a certificate is issued or renewed.
const ReloadCommand = "systemctl reload nginx"

// ProxyHostData contains data for the nginx proxy host template
type ProxyHostData struct {
	Source  string
	Target  string
	CertDir string
}

// CertRequestData contains data for the acme-redirect template
type CertRequestData struct {
	Source        string
	ReloadCommand string
}

// CertDir returns the directory acme-redirect stores the certificate for source in.
func CertDir(source string) string {
	return path.Join(acmeLiveDir, source)
}

// RenderProxyHost renders an nginx server block terminating TLS for source
// and forwarding everything to target.
func RenderProxyHost(source, target string) (string, error) {
	return execute(proxyHostTmpl, ProxyHostData{
		Source:  source,
		Target:  target,
		CertDir: CertDir(source),
	})
}

// RenderCertRequest renders an acme-redirect certificate request for source.
func RenderCertRequest(source string) (string, error) {
	return execute(certRequestTmpl, CertRequestData{
		Source:        source,
		ReloadCommand: ReloadCommand,
	})
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, "render "+tmpl.Name(), err)
	}
	return buf.String(), nil
}
