package rotate

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ksyq12/web-distributor/internal/errors"
	"github.com/ksyq12/web-distributor/internal/logger"
)

// Selector reports whether a directory entry of a shared root belongs to
// the live generation.
type Selector func(name string) bool

// Plan describes where a generation lives and where its backups go.
type Plan struct {
	// Root holds the backup slot and every archive.
	Root string

	// Backup is the name of the backup slot under Root.
	Backup string

	// Live is the name of the live directory under Root. Empty means the
	// live generation is the set of Root entries accepted by Select.
	Live string

	// Select picks the owned entries of Root when Live is empty.
	Select Selector
}

// Whole returns a plan for a live directory Root/live owned outright.
func Whole(root, live, backup string) *Plan {
	return &Plan{Root: root, Live: live, Backup: backup}
}

// Selective returns a plan for files named with prefix inside the shared
// directory root.
func Selective(root, backup, prefix string) *Plan {
	return &Plan{Root: root, Backup: backup, Select: PrefixSelector(prefix, backup)}
}

// PrefixSelector accepts names starting with prefix, except names starting
// with backup, so earlier backups and archives are never re-archived.
// Matching is case sensitive.
func PrefixSelector(prefix, backup string) Selector {
	return func(name string) bool {
		return strings.HasPrefix(name, prefix) && !strings.HasPrefix(name, backup)
	}
}

// Timestamp formats t as fractional Unix seconds, the suffix used for
// archive directories.
func Timestamp(t time.Time) string {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
	return strconv.FormatFloat(secs, 'f', -1, 64)
}

// LiveDir returns the directory new output is written to.
func (p *Plan) LiveDir() string {
	if p.Live == "" {
		return p.Root
	}
	return filepath.Join(p.Root, p.Live)
}

// BackupDir returns the backup slot.
func (p *Plan) BackupDir() string {
	return filepath.Join(p.Root, p.Backup)
}

// ArchiveDir returns the archive name for a run's timestamp.
func (p *Plan) ArchiveDir(timestamp string) string {
	return filepath.Join(p.Root, p.Backup+"-"+timestamp)
}

// Rotate archives the backup slot, demotes the live generation into it,
// and leaves LiveDir existing.
func (p *Plan) Rotate(timestamp string) error {
	if p.Live == "" && p.Select == nil {
		return errors.Wrap(errors.ErrCodeInternal, "rotation plan has neither live directory nor selector", nil)
	}

	archive := p.ArchiveDir(timestamp)
	archived, err := renameIfExists(p.BackupDir(), archive)
	if err != nil {
		return errors.WrapPath(errors.ErrCodeRotate, "archive backup", p.BackupDir()+" -> "+archive, err)
	}
	if archived {
		logger.Info("archived backup", "from", p.BackupDir(), "to", archive)
	}

	if p.Live != "" {
		return p.demoteDir()
	}
	return p.demoteSelected()
}

func (p *Plan) demoteDir() error {
	live, backup := p.LiveDir(), p.BackupDir()

	demoted, err := renameIfExists(live, backup)
	if err != nil {
		return errors.WrapPath(errors.ErrCodeRotate, "demote live directory", live+" -> "+backup, err)
	}
	if demoted {
		logger.Info("demoted live directory", "from", live, "to", backup)
	}

	if err := os.MkdirAll(live, 0755); err != nil {
		return errors.WrapPath(errors.ErrCodeRotate, "create live directory", live, err)
	}
	return nil
}

func (p *Plan) demoteSelected() error {
	backup := p.BackupDir()
	if err := os.MkdirAll(backup, 0755); err != nil {
		return errors.WrapPath(errors.ErrCodeRotate, "create backup directory", backup, err)
	}

	entries, err := os.ReadDir(p.Root)
	if err != nil {
		return errors.WrapPath(errors.ErrCodeRotate, "read", p.Root, err)
	}

	moved := 0
	for _, entry := range entries {
		name := entry.Name()
		if !p.Select(name) {
			continue
		}
		from, to := filepath.Join(p.Root, name), filepath.Join(backup, name)
		if err := os.Rename(from, to); err != nil {
			return errors.WrapPath(errors.ErrCodeRotate, "demote", from+" -> "+to, err)
		}
		moved++
	}

	logger.Info("demoted selected entries", "root", p.Root, "backup", backup, "moved", moved)
	return nil
}

// renameIfExists renames from to to. A missing source is reported as
// (false, nil).
func renameIfExists(from, to string) (bool, error) {
	if err := os.Rename(from, to); err != nil {
		if errors.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
