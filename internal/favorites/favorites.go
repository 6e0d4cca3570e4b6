// Package favorites persists the user's starred coupon codes as a JSON array
// of integers in a single file, the session-spanning analogue of a browser
// local-storage key.
package favorites

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Set is a mutable, file-backed set of favorite coupon codes. Every mutation
// is persisted synchronously before it returns, so displayed state never
// diverges from what is on disk.
type Set struct {
	path  string
	codes map[int]bool
}

// DefaultPath returns the well-known favorites location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "kcouper", "favorites.json"), nil
}

// Load reads the favorite set from path. A missing file means an empty set.
func Load(path string) (*Set, error) {
	s := &Set{path: path, codes: make(map[int]bool)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading favorites: %w", err)
	}

	var codes []int
	if err := json.Unmarshal(data, &codes); err != nil {
		return nil, fmt.Errorf("decoding favorites: %w", err)
	}
	for _, code := range codes {
		s.codes[code] = true
	}
	return s, nil
}

// Contains reports whether a coupon code is starred.
func (s *Set) Contains(code int) bool {
	return s.codes[code]
}

// Toggle flips the favorite state of a coupon code, persists the set, and
// reports the new state. A failed save rolls the flip back so the in-memory
// set stays consistent with disk.
func (s *Set) Toggle(code int) (bool, error) {
	had := s.codes[code]
	if had {
		delete(s.codes, code)
	} else {
		s.codes[code] = true
	}
	if err := s.save(); err != nil {
		if had {
			s.codes[code] = true
		} else {
			delete(s.codes, code)
		}
		return had, err
	}
	return !had, nil
}

// Codes returns the starred codes in ascending order.
func (s *Set) Codes() []int {
	codes := make([]int, 0, len(s.codes))
	for code := range s.codes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Lookup returns the set as a plain map for the filter engine.
func (s *Set) Lookup() map[int]bool {
	out := make(map[int]bool, len(s.codes))
	for code := range s.codes {
		out[code] = true
	}
	return out
}

func (s *Set) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating favorites dir: %w", err)
	}
	data, err := json.Marshal(s.Codes())
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing favorites: %w", err)
	}
	return nil
}
