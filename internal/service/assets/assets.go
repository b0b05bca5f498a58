package assets

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sitetwin/internal/model"
)

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

// Loader resolves site images under the visuals directory
type Loader struct {
	visualsDir string
}

// NewLoader creates a loader rooted at visualsDir
func NewLoader(visualsDir string) *Loader {
	return &Loader{visualsDir: visualsDir}
}

// Path file under the visuals root
func (l *Loader) Path(name string) string {
	return filepath.Join(l.visualsDir, name)
}

// Require halts the render with message when path does not exist
func Require(path, message string) error {
	if _, err := os.Stat(path); err != nil {
		return model.Halt(message, err)
	}
	return nil
}

// Exists reports whether path is present
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadLogo reads the logo and returns it as a data URI. A missing logo halts the page.
func (l *Loader) LoadLogo(name string) (string, error) {
	path := l.Path(name)
	if err := Require(path, fmt.Sprintf("Logo not found at %s", path)); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", model.Halt(fmt.Sprintf("Logo not readable at %s", path), err)
	}
	return DataURI(data), nil
}

// DataURI base64 data URI with a sniffed content type
func DataURI(data []byte) string {
	return "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// FindSiteImage first photo named after a progress date key ("08 Mar" -> 08mar*.png).
// Returns the file name relative to the visuals root, or "" when there is none.
func (l *Loader) FindSiteImage(key string) string {
	pattern := strings.ReplaceAll(strings.ToLower(key), " ", "")
	matches, err := filepath.Glob(filepath.Join(l.visualsDir, globEscape(pattern)+"*"))
	if err != nil {
		return ""
	}
	sort.Strings(matches)
	for _, m := range matches {
		if imageExts[strings.ToLower(filepath.Ext(m))] {
			return filepath.Base(m)
		}
	}
	return ""
}

// SiteImages FindSiteImage for every key
func (l *Loader) SiteImages(keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = l.FindSiteImage(k)
	}
	return out
}

func globEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`)
	return r.Replace(s)
}
