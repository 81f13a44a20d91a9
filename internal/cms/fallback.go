package cms

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/nfrund/pattivana/internal/domain"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// readFallback loads the local YAML content document.
func readFallback(fsys afero.Fs, path string) (Site, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Site{}, fmt.Errorf("cms: fallback %s: %w", path, domain.ErrNotFound)
		}
		return Site{}, fmt.Errorf("cms: read fallback %s: %w", path, err)
	}
	return ParseSite(data)
}

// ParseSite decodes and validates a YAML content document.
func ParseSite(data []byte) (Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}
	if err := site.Menu.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

// ValidateFile parses the document at path without caching it.
func ValidateFile(fsys afero.Fs, path string) (Site, error) {
	return readFallback(fsys, path)
}
