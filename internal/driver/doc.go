// Package driver ties each output location web-distributor writes to
// its rotation plan, template, and file naming.
//
// # Drivers
//
//   - nginx: proxy hosts in <home>/nginx/<namespace>.nginx. The nginx
//     directory is owned by this tool and rotated as a whole into
//     <home>/nginx-old.
//   - acme-redirect: certificate requests in
//     <acme_redirect_configs>/web-distributor.<namespace>.conf. The directory
//     is shared with other configs, so only web-distributor* files are
//     moved into <acme_redirect_configs>/web-distributor-old.
//
// # Basic Usage
//
//	for _, drv := range driver.All(cfg) {
//	    if err := drv.Rotate(ts); err != nil {
//	        return err
//	    }
//	    for _, ns := range cfg.Namespaces() {
//	        if _, err := drv.Write(ns, cfg.Map[ns]); err != nil {
//	            return err
//	        }
//	    }
//	}
//
// # Testing
//
// MockDriver records Rotate and Write calls and lets tests inject failures
// through RotateFunc and WriteFunc.
//
// # Error Handling
//
// Rotation failures carry code ROTATE, write failures code WRITE. A missing
// output directory is created on Write.
package driver
