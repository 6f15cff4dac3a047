package driver

import (
	"github.com/ksyq12/web-distributor/internal/rotate"
	"github.com/ksyq12/web-distributor/internal/template"
)

// Names of the nginx output directories under the configured home.
const (
	NginxDir       = "nginx"
	NginxBackupDir = "nginx-old"
	nginxExt       = ".nginx"
)

// NginxDriver writes proxy host files into home/nginx, a directory it owns
// outright.
type NginxDriver struct {
	plan *rotate.Plan
}

// NewNginx creates an nginx driver rooted at home
func NewNginx(home string) *NginxDriver {
	return &NginxDriver{
		plan: rotate.Whole(home, NginxDir, NginxBackupDir),
	}
}

// Name returns the driver name
func (n *NginxDriver) Name() string {
	return "nginx"
}

// Dir returns home/nginx
func (n *NginxDriver) Dir() string {
	return n.plan.LiveDir()
}

// Rotate archives nginx-old, demotes nginx to nginx-old, and recreates nginx
func (n *NginxDriver) Rotate(timestamp string) error {
	return n.plan.Rotate(timestamp)
}

// FileName returns <namespace>.nginx
func (n *NginxDriver) FileName(namespace string) string {
	return namespace + nginxExt
}

// Write renders the proxy host for namespace and writes it
func (n *NginxDriver) Write(namespace, target string) (string, error) {
	content, err := template.RenderProxyHost(namespace, target)
	if err != nil {
		return "", err
	}
	return writeFile(n.Dir(), n.FileName(namespace), content)
}
