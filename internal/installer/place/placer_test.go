package place

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"ipp.lib", "ipp.a"},
		{"ippsub.lib.bak", "ippsub.a.bak"},
		{"ipps.dll", "ipps.dll"},
		{"a.lib.lib", "a.a.a"},
		{"library.h", "library.h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LibraryName(tt.name))
		})
	}
}

func TestPlan(t *testing.T) {
	t.Run("pairs every entry", func(t *testing.T) {
		src := t.TempDir()
		for _, name := range []string{"ippcore.lib", "ipps.lib", "readme.txt"} {
			require.NoError(t, os.WriteFile(filepath.Join(src, name), []byte(name), 0644))
		}

		entries, err := Plan(src, "/dst", LibraryName)
		require.NoError(t, err)

		assert.Equal(t, []Entry{
			{Src: filepath.Join(src, "ippcore.lib"), Dst: filepath.Join("/dst", "ippcore.a")},
			{Src: filepath.Join(src, "ipps.lib"), Dst: filepath.Join("/dst", "ipps.a")},
			{Src: filepath.Join(src, "readme.txt"), Dst: filepath.Join("/dst", "readme.txt")},
		}, entries)
	})

	t.Run("does not recurse", func(t *testing.T) {
		src := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "nested.h"), []byte("n"), 0644))

		entries, err := Plan(src, "/dst", SameName)
		require.NoError(t, err)

		require.Len(t, entries, 1)
		assert.Equal(t, filepath.Join(src, "sub"), entries[0].Src)
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := Plan(filepath.Join(t.TempDir(), "missing"), "/dst", SameName)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestCopyFile(t *testing.T) {
	t.Run("copies content", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "a.h")
		dst := filepath.Join(dir, "b.h")
		require.NoError(t, os.WriteFile(src, []byte("#define A 1\n"), 0644))

		require.NoError(t, CopyFile(src, dst))

		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "#define A 1\n", string(got))
	})

	t.Run("overwrites existing destination", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "a.h")
		dst := filepath.Join(dir, "b.h")
		require.NoError(t, os.WriteFile(src, []byte("new"), 0644))
		require.NoError(t, os.WriteFile(dst, []byte("old content that is longer"), 0644))

		require.NoError(t, CopyFile(src, dst))

		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("preserves mode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not meaningful on windows")
		}
		dir := t.TempDir()
		src := filepath.Join(dir, "tool")
		dst := filepath.Join(dir, "tool.copy")
		require.NoError(t, os.WriteFile(src, []byte("x"), 0644))
		require.NoError(t, os.Chmod(src, 0751))
		require.NoError(t, os.WriteFile(dst, []byte("y"), 0600))

		require.NoError(t, CopyFile(src, dst))

		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0751), info.Mode().Perm())
	})

	t.Run("same file is refused and left intact", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "a.h")
		require.NoError(t, os.WriteFile(src, []byte("HEADER"), 0644))

		err := CopyFile(src, filepath.Join(dir, ".", "a.h"))
		assert.ErrorIs(t, err, ErrSameFile)

		got, err := os.ReadFile(src)
		require.NoError(t, err)
		assert.Equal(t, "HEADER", string(got))
	})

	t.Run("same file through a symlink", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlinks need extra privileges on windows")
		}
		dir := t.TempDir()
		src := filepath.Join(dir, "a.h")
		link := filepath.Join(dir, "link.h")
		require.NoError(t, os.WriteFile(src, []byte("HEADER"), 0644))
		require.NoError(t, os.Symlink(src, link))

		err := CopyFile(src, link)
		assert.ErrorIs(t, err, ErrSameFile)

		got, err := os.ReadFile(src)
		require.NoError(t, err)
		assert.Equal(t, "HEADER", string(got))
	})

	t.Run("directory source fails", func(t *testing.T) {
		dir := t.TempDir()
		err := CopyFile(dir, filepath.Join(t.TempDir(), "out"))
		assert.Error(t, err)
	})

	t.Run("missing destination directory fails", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "a.h")
		require.NoError(t, os.WriteFile(src, []byte("a"), 0644))

		err := CopyFile(src, filepath.Join(dir, "missing", "a.h"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestReplaceInFile(t *testing.T) {
	t.Run("replaces all occurrences", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ippdefs.h")
		content := "typedef __int64 Ipp64s;\ntypedef unsigned __int64 Ipp64u;\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		n, err := ReplaceInFile(path, "__int64", "long long")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "typedef long long Ipp64s;\ntypedef unsigned long long Ipp64u;\n", string(got))
	})

	t.Run("no occurrence leaves content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ippdefs.h")
		require.NoError(t, os.WriteFile(path, []byte("int x;"), 0644))

		n, err := ReplaceInFile(path, "__int64", "long long")
		require.NoError(t, err)
		assert.Zero(t, n)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "int x;", string(got))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReplaceInFile(filepath.Join(t.TempDir(), "ippdefs.h"), "a", "b")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
