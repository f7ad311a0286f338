package place

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrSameFile is returned when the source and destination of a copy are the same file.
var ErrSameFile = errors.New("source and destination are the same file")

// Entry is a single file scheduled for copying.
type Entry struct {
	Src string // Absolute source path
	Dst string // Absolute destination path
}

// RenameFunc maps a source file name to its destination file name.
type RenameFunc func(name string) string

// SameName keeps the source file name.
func SameName(name string) string {
	return name
}

// LibraryName rewrites every ".lib" in name to ".a".
// The replacement is literal and not anchored to the end of the name,
// so "ippsub.lib.bak" becomes "ippsub.a.bak".
func LibraryName(name string) string {
	return strings.ReplaceAll(name, ".lib", ".a")
}

// Plan lists the direct entries of srcDir and pairs each with its
// destination in dstDir. Subdirectories are not descended into.
// Entries are returned in name order.
func Plan(srcDir, dstDir string, rename RenameFunc) ([]Entry, error) {
	dirEntries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		entries = append(entries, Entry{
			Src: filepath.Join(srcDir, d.Name()),
			Dst: filepath.Join(dstDir, rename(d.Name())),
		})
	}

	slog.Debug("planned copy", "src", srcDir, "dst", dstDir, "entries", len(entries))
	return entries, nil
}

// CopyFile copies src to dst byte-for-byte and applies the source permission
// bits to dst. An existing dst is overwritten, unless it is src itself.
func CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}

	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("%s: %w", dst, ErrSameFile)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}

	// OpenFile only applies the mode on create
	return os.Chmod(dst, srcInfo.Mode().Perm())
}

// ReplaceInFile replaces every occurrence of from with to in the file at
// path and writes it back in place. Returns the number of replacements.
func ReplaceInFile(path, from, to string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	n := strings.Count(string(content), from)
	patched := strings.ReplaceAll(string(content), from, to)

	if err := os.WriteFile(path, []byte(patched), info.Mode().Perm()); err != nil {
		return 0, err
	}

	slog.Debug("patched file", "path", path, "from", from, "to", to, "count", n)
	return n, nil
}
