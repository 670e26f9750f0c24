package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File is one discovered source file: its absolute path and its path
// relative to the walked root.
type File struct {
	Path string
	Rel  string
}

// CheckDirs validates the source and destination directories before any
// processing starts. Both must already exist and be directories.
func CheckDirs(src, dst string) error {
	for _, dir := range []string{src, dst} {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("directory %s: %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}
	}
	return nil
}

// Sources walks root depth-first and returns a flat, ordered list of the
// files whose name ends with ext. The extension match is case-insensitive.
func Sources(root, ext string) ([]File, error) {
	var files []File
	ext = strings.ToLower(ext)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ext) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, File{Path: path, Rel: rel})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// OutputName maps a relative source path to its output file name:
// path separators become underscores and ".html" is appended, so nested
// files cannot collide in the flat destination directory.
func OutputName(rel string) string {
	joined := strings.ReplaceAll(filepath.ToSlash(rel), "/", "_")
	return joined + ".html"
}
