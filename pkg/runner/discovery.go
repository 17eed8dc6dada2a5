package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover resolves opts.Paths to the sorted list of absolute Markdown
// file paths a run should parse. Directories are walked recursively;
// explicit file paths still pass the extension and glob filters. Paths
// named more than once collapse to a single entry.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	w := &walker{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		opts:       opts,
		seen:       make(map[string]struct{}),
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			if err := w.walk(ctx, abs); err != nil {
				return nil, err
			}
			continue
		}
		if w.matches(abs) {
			w.add(abs)
		}
	}

	sort.Strings(w.files)
	return w.files, nil
}

// resolveWorkDir absolutizes the configured working directory, falling
// back to the process's.
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

// walker accumulates matching files across the input paths. Glob
// patterns match against paths relative to workDir.
type walker struct {
	workDir    string
	extensions []string
	opts       Options

	seen  map[string]struct{}
	files []string
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

// rel makes path workDir-relative for glob matching, keeping it as-is
// when it lies outside workDir on another volume.
func (w *walker) rel(path string) string {
	rel, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// matches reports whether a file passes the extension filter and the
// exclude and include globs.
func (w *walker) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	ok := false
	for _, want := range w.extensions {
		if strings.ToLower(want) == ext {
			ok = true
			break
		}
	}
	if !ok {
		return false
	}

	rel := w.rel(path)
	if matchesAny(rel, w.opts.ExcludeGlobs) {
		return false
	}
	if len(w.opts.IncludeGlobs) > 0 && !matchesAny(rel, w.opts.IncludeGlobs) {
		return false
	}
	return true
}

// walk gathers matching files under root. Hidden entries are skipped,
// excluded directories are pruned whole, and unreadable subtrees are
// not fatal.
func (w *walker) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		name := entry.Name()

		if entry.IsDir() {
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if matchesAny(w.rel(path), w.opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			done, err := w.followSymlink(ctx, path)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if w.matches(path) {
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// followSymlink resolves a symlink entry. A directory target is walked
// in place when FollowSymlinks is set and skipped otherwise; a file
// target falls through to the regular file checks. Broken or
// unreadable links are skipped silently. done reports whether the
// entry was fully handled here.
func (w *walker) followSymlink(ctx context.Context, path string) (done bool, err error) {
	target, evalErr := filepath.EvalSymlinks(path)
	if evalErr != nil {
		return true, nil
	}
	info, statErr := os.Stat(target)
	if statErr != nil {
		return true, nil
	}
	if !info.IsDir() {
		return false, nil
	}
	if !w.opts.FollowSymlinks {
		return true, nil
	}
	// WalkDir will not descend through the link itself, so walk the
	// resolved target.
	return true, w.walk(ctx, target)
}

// matchesAny reports whether relPath matches any of the glob patterns.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches one path against one pattern. Plain patterns try
// filepath.Match on the whole path and then on its base name, so
// "*.md" applies at any depth. Patterns holding ** match across
// separators.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchRecursive(path, pattern)
	}

	if ok, err := filepath.Match(pattern, path); err == nil && ok {
		return true
	}
	ok, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && ok
}

// matchRecursive handles the ** pattern shapes: a bare "**",
// "**/suffix" (suffix anywhere), "prefix/**" (anything under prefix),
// and "prefix/**/suffix".
func matchRecursive(path, pattern string) bool {
	before, after, _ := strings.Cut(pattern, "**")
	prefix := strings.TrimSuffix(before, "/")
	suffix := strings.TrimPrefix(after, "/")

	switch {
	case prefix == "" && suffix == "":
		return true

	case prefix == "":
		// "**/suffix": the suffix may end the path, name any single
		// component, or appear as a subpath.
		if strings.HasSuffix(path, suffix) {
			return true
		}
		for _, part := range strings.Split(path, "/") {
			if ok, err := filepath.Match(suffix, part); err == nil && ok {
				return true
			}
		}
		return strings.Contains(path, suffix)

	case suffix == "":
		// "prefix/**": everything under prefix, and prefix itself.
		return path == prefix || strings.HasPrefix(path, prefix+"/")

	default:
		if !strings.HasPrefix(path, prefix) {
			return false
		}
		if strings.HasSuffix(path, suffix) {
			return true
		}
		ok, err := filepath.Match(suffix, filepath.Base(path))
		return err == nil && ok
	}
}
