// Package installer copies an IPP installation into the mingw layout.
//
// The pipeline runs four stages in order, each exactly once:
//
//	EnsureLayout  -> create <dest>/include and <dest>/lib/ia32
//	CopyHeaders   -> <src>/include/*     -> <dest>/include/*
//	CopyLibraries -> <src>/lib/ia32/*    -> <dest>/lib/ia32/* (".lib" -> ".a")
//	PatchHeader   -> ippdefs.h: "__int64" -> "long long"
//
// The first filesystem error stops the pipeline.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	ippErrors "github.com/terassyi/ippmingw/internal/errors"
	"github.com/terassyi/ippmingw/internal/installer/place"
	"github.com/terassyi/ippmingw/internal/path"
)

// Header patch constants.
const (
	PatchFrom = "__int64"
	PatchTo   = "long long"
)

// InstallOption configures the installation.
type InstallOption func(*InstallConfig)

// InstallConfig holds installation configuration.
type InstallConfig struct {
	DryRun bool // Report every step without touching the filesystem
	Strict bool // Fail when the source include directory is missing instead of continuing
}

// WithDryRun reports the copy plan without writing anything.
func WithDryRun(dryRun bool) InstallOption {
	return func(c *InstallConfig) {
		c.DryRun = dryRun
	}
}

// WithStrict aborts right after the not-found diagnostic.
func WithStrict(strict bool) InstallOption {
	return func(c *InstallConfig) {
		c.Strict = strict
	}
}

// Result summarises a completed run.
type Result struct {
	Created      []string // Destination directories that had to be created
	Headers      int      // Header files copied
	Libraries    int      // Library files copied
	Replacements int      // Occurrences rewritten in ippdefs.h
}

// Installer copies IPP headers and libraries for one Config.
type Installer struct {
	cfg          *path.Config
	paths        path.PathSet
	opts         InstallConfig
	eventHandler EventHandler
}

// New creates an Installer for cfg.
func New(cfg *path.Config, opts ...InstallOption) *Installer {
	var c InstallConfig
	for _, opt := range opts {
		opt(&c)
	}
	return &Installer{
		cfg:   cfg,
		paths: cfg.Paths(),
		opts:  c,
	}
}

// SetEventHandler sets a callback for installer events.
func (i *Installer) SetEventHandler(handler EventHandler) {
	i.eventHandler = handler
}

// emitEvent emits an event to the handler if set.
func (i *Installer) emitEvent(event Event) {
	if i.eventHandler != nil {
		i.eventHandler(event)
	}
}

// Run executes every stage in order.
func (i *Installer) Run(ctx context.Context) (*Result, error) {
	slog.Debug("starting install",
		"source", i.cfg.SourceRoot(),
		"version", i.cfg.Version(),
		"installRoot", i.cfg.InstallRoot(),
		"dest", i.cfg.InstallDir(),
		"dryRun", i.opts.DryRun,
	)

	res := &Result{}

	// Strict runs must not leave an empty tree behind.
	if i.opts.Strict {
		if err := i.checkSource(); err != nil {
			return res, err
		}
	}

	created, err := i.EnsureLayout()
	if err != nil {
		return res, err
	}
	res.Created = created

	if res.Headers, err = i.CopyHeaders(ctx); err != nil {
		return res, err
	}

	if res.Libraries, err = i.CopyLibraries(ctx); err != nil {
		return res, err
	}

	if res.Replacements, err = i.PatchHeader(); err != nil {
		return res, err
	}

	slog.Info("install complete",
		"dest", i.cfg.InstallDir(),
		"headers", res.Headers,
		"libraries", res.Libraries,
		"replacements", res.Replacements,
	)
	return res, nil
}

// EnsureLayout creates the destination include and library directories,
// including missing parents. Existing directories are left alone.
// Returns the directories that were created.
func (i *Installer) EnsureLayout() ([]string, error) {
	var created []string
	for _, dir := range i.paths.DestDirs() {
		if i.opts.DryRun {
			if !path.Exists(dir) {
				created = append(created, dir)
				i.emitEvent(Event{Type: EventMkdir, Path: dir})
			}
			continue
		}

		ok, err := path.EnsureDir(dir)
		if err != nil {
			installErr := ippErrors.NewInstallError(ippErrors.StageLayout, dir, err)
			if errors.Is(err, fs.ErrPermission) {
				installErr.WithHint(fmt.Sprintf("Run from an account that can write to %s.", i.cfg.InstallRoot()))
			}
			return created, installErr
		}
		if ok {
			slog.Debug("created directory", "path", dir)
			created = append(created, dir)
			i.emitEvent(Event{Type: EventMkdir, Path: dir})
		}
	}
	return created, nil
}

// CopyHeaders copies every entry of the source include directory to the
// destination include directory under the same name.
//
// A missing source include directory is reported with EventNotFound and the
// copy is still attempted, so the enumeration error surfaces right after.
// In strict mode the run stops at the diagnostic instead.
func (i *Installer) CopyHeaders(ctx context.Context) (int, error) {
	if err := i.checkSource(); err != nil {
		return 0, err
	}

	return i.copyDir(ctx, ippErrors.StageHeaders, i.paths.SourceInclude, i.paths.DestInclude, place.SameName)
}

// checkSource reports a missing source include directory. It only returns
// an error in strict mode.
func (i *Installer) checkSource() error {
	if path.Exists(i.paths.SourceInclude) {
		return nil
	}
	i.emitEvent(Event{Type: EventNotFound, Path: i.cfg.SourceRoot()})
	if i.opts.Strict {
		return ippErrors.NewSourceNotFoundError(i.cfg.SourceRoot(), i.paths.SourceInclude)
	}
	return nil
}

// CopyLibraries copies every entry of the source library directory to the
// destination library directory, rewriting ".lib" to ".a" in each name.
func (i *Installer) CopyLibraries(ctx context.Context) (int, error) {
	return i.copyDir(ctx, ippErrors.StageLibraries, i.paths.SourceLib, i.paths.DestLib, place.LibraryName)
}

// PatchHeader rewrites every "__int64" in the copied ippdefs.h to "long long".
// The header must exist; there is no existence check before the read.
func (i *Installer) PatchHeader() (int, error) {
	target := i.paths.PatchedHeaderPath()

	if i.opts.DryRun {
		i.emitEvent(Event{Type: EventPatch, Path: target})
		return 0, nil
	}

	n, err := place.ReplaceInFile(target, PatchFrom, PatchTo)
	if err != nil {
		installErr := ippErrors.NewInstallError(ippErrors.StagePatch, target, err)
		if errors.Is(err, fs.ErrNotExist) {
			installErr.WithHint(fmt.Sprintf("%s was not in the copied include directory.", path.PatchedHeader))
		}
		return 0, installErr
	}

	i.emitEvent(Event{Type: EventPatch, Path: target, Replacements: n})
	return n, nil
}

func (i *Installer) copyDir(ctx context.Context, stage, srcDir, dstDir string, rename place.RenameFunc) (int, error) {
	entries, err := place.Plan(srcDir, dstDir, rename)
	if err != nil {
		return 0, ippErrors.NewInstallError(stage, srcDir, err)
	}

	copied := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return copied, err
		}

		i.emitEvent(Event{Type: EventCopy, Src: e.Src, Dst: e.Dst})
		if i.opts.DryRun {
			copied++
			continue
		}

		slog.Debug("copying file", "src", e.Src, "dst", e.Dst)
		if err := place.CopyFile(e.Src, e.Dst); err != nil {
			installErr := ippErrors.NewInstallError(stage, e.Src, err).WithDest(e.Dst)
			if errors.Is(err, place.ErrSameFile) {
				installErr.WithHint("The IPP path points into the install tree.\nPass the vendor installation with --path.")
			}
			return copied, installErr
		}
		copied++
	}
	return copied, nil
}
