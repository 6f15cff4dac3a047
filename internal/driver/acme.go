package driver

import (
	"github.com/ksyq12/web-distributor/internal/rotate"
	"github.com/ksyq12/web-distributor/internal/template"
)

// File naming inside the shared acme-redirect directory. Everything this
// tool owns there starts with AcmePrefix.
const (
	AcmePrefix    = "web-distributor"
	AcmeBackupDir = AcmePrefix + "-old"
	acmeExt       = ".conf"
)

// AcmeRedirectDriver writes certificate requests into a directory shared
// with other acme-redirect configs. Only files carrying AcmePrefix are
// rotated.
type AcmeRedirectDriver struct {
	plan *rotate.Plan
}

// NewAcmeRedirect creates an acme-redirect driver for dir
func NewAcmeRedirect(dir string) *AcmeRedirectDriver {
	return &AcmeRedirectDriver{
		plan: rotate.Selective(dir, AcmeBackupDir, AcmePrefix),
	}
}

// Name returns the driver name
func (a *AcmeRedirectDriver) Name() string {
	return "acme-redirect"
}

// Dir returns the acme-redirect config directory
func (a *AcmeRedirectDriver) Dir() string {
	return a.plan.LiveDir()
}

// Rotate archives web-distributor-old and moves owned files into a fresh one
func (a *AcmeRedirectDriver) Rotate(timestamp string) error {
	return a.plan.Rotate(timestamp)
}

// FileName returns web-distributor.<namespace>.conf
func (a *AcmeRedirectDriver) FileName(namespace string) string {
	return AcmePrefix + "." + namespace + acmeExt
}

// Write renders the certificate request for namespace and writes it.
// The target is not part of a certificate request.
func (a *AcmeRedirectDriver) Write(namespace, _ string) (string, error) {
	content, err := template.RenderCertRequest(namespace)
	if err != nil {
		return "", err
	}
	return writeFile(a.Dir(), a.FileName(namespace), content)
}
