package file

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/renameio/v2"
)

// WriteAtomic writes content to path using a temp-file-then-rename
// sequence, so a crash mid-write never leaves a truncated file at path.
// This is what the texttools CLI's -o flag uses to write tojson/obfuscate
// output, rather than a plain os.WriteFile.
func WriteAtomic(path string, content string) error {
	targetPath, err := targetPathForWrite(path)
	if err != nil {
		return err
	}

	pf, err := renameio.NewPendingFile(targetPath, renameio.WithPermissions(0644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("renameio.NewPendingFile: %w", err)
	}
	defer pf.Cleanup()

	if _, err := pf.Write([]byte(content)); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("renameio.CloseAtomicallyReplace: %w", err)
	}

	return nil
}

// targetPathForWrite resolves path through a symlink, if any, so the write
// lands on the symlink's target instead of replacing the symlink itself.
func targetPathForWrite(path string) (string, error) {
	fileInfo, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return path, nil
	} else if err != nil {
		return "", fmt.Errorf("os.Lstat: %w", err)
	}

	if fileInfo.Mode()&os.ModeSymlink == 0 {
		return path, nil
	}

	target, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("os.Readlink: %w", err)
	}
	log.Printf("resolved symlink target %s -> %s", path, target)
	return target, nil
}

// EnsureTrailingNewline appends a trailing line feed if content does not
// already end with one, matching the POSIX end-of-file convention the
// teacher's save path applied unconditionally.
func EnsureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
