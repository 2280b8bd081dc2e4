package entrypoint

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"plasmodocking/pkg/filestore"
	"plasmodocking/pkg/logger"
)

// Owner is the uid/gid the data directories are handed to. A negative
// value leaves that id unchanged.
type Owner struct {
	UID int
	GID int
}

// ParseOwner parses APP_UID and APP_GID. Empty or invalid values are
// ignored with a warning.
func ParseOwner(ctx context.Context, uid, gid string) (Owner, bool) {
	o := Owner{UID: -1, GID: -1}
	parse := func(name, v string) int {
		if v == "" {
			return -1
		}
		id, err := strconv.Atoi(v)
		if err != nil || id < 0 {
			logger.Warn(ctx, "ignoring invalid id", zap.String("name", name), zap.String("value", v))

			return -1
		}

		return id
	}
	o.UID = parse("APP_UID", uid)
	o.GID = parse("APP_GID", gid)

	return o, o.UID >= 0 || o.GID >= 0
}

// FixPermissions creates dirs with the shared directory mode and, when
// running as root with an owner, hands them over recursively. It never
// fails: problems are logged and skipped.
func FixPermissions(ctx context.Context, dirs []string, owner Owner, hasOwner bool) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := filestore.EnsureDir(ctx, dir); err != nil {
			logger.Warn(ctx, "could not prepare directory", zap.String("dir", dir), zap.Error(err))

			continue
		}

		if !hasOwner {
			continue
		}
		if unix.Geteuid() != 0 {
			logger.Debug(ctx, "not running as root, skipping chown", zap.String("dir", dir))

			continue
		}

		chownTree(ctx, dir, owner)
	}
}

func chownTree(ctx context.Context, dir string, owner Owner) {
	failed := 0
	err := filepath.WalkDir(dir, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				failed++

				return nil
			}

			return err
		}
		if err := unix.Lchown(path, owner.UID, owner.GID); err != nil {
			failed++
		}

		return nil
	})
	if err != nil {
		logger.Warn(ctx, "could not walk directory", zap.String("dir", dir), zap.Error(err))
	}
	if failed > 0 {
		logger.Warn(ctx, "could not change owner of some entries", zap.String("dir", dir), zap.Int("failed", failed))
	}
}
