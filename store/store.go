// Package store persists connection profiles as one dotenv file per profile.
package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/quanticsoul4772/pcode-go/errors"
	"github.com/quanticsoul4772/pcode-go/logging"
	"github.com/quanticsoul4772/pcode-go/models"
)

const (
	// Extension is the file suffix of a profile file
	Extension = ".env"

	keyUsername   = "USERNAME"
	keyHostname   = "HOSTNAME"
	keyTargetPath = "TARGET_PATH"

	dirPerm  = 0o700
	filePerm = 0o600
)

// Store reads and writes profiles under a single directory
type Store struct {
	dir    string
	logger *log.Logger
}

// New creates a store rooted at dir. The directory is created on first save.
func New(dir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{dir: dir, logger: logger.With("component", "store")}
}

// Dir returns the directory holding the profile files
func (s *Store) Dir() string {
	return s.dir
}

// List returns profile names in directory order. A missing directory holds
// no profiles.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, errors.E(errors.IOError, "list profiles", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), Extension)
		if validateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Load reads the profile stored under name
func (s *Store) Load(name string) (models.Profile, error) {
	if err := validateName(name); err != nil {
		return models.Profile{}, err
	}
	path := s.path(name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Profile{}, errors.E(errors.NotFound, "profile not found", name, nil)
		}
		return models.Profile{}, errors.E(errors.IOError, "read profile", path, err)
	}

	values, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return models.Profile{}, errors.E(errors.MalformedRecord, "parse profile", name, err)
	}

	var missing []string
	for _, key := range []string{keyUsername, keyHostname, keyTargetPath} {
		if values[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return models.Profile{}, errors.E(errors.MalformedRecord,
			fmt.Sprintf("profile missing %s", strings.Join(missing, ", ")), name, nil)
	}

	s.logger.Debug("loaded profile", "profile", name)
	return models.Profile{
		Name:       name,
		Username:   values[keyUsername],
		Hostname:   values[keyHostname],
		RemotePath: values[keyTargetPath],
	}, nil
}

// Save writes p, replacing any existing profile with the same name. The
// file is written to a temporary name and renamed into place.
func (s *Store) Save(p models.Profile) error {
	if !p.Complete() {
		return errors.E(errors.Validation, "profile, username, hostname and path are required", p.Name, nil)
	}
	if err := validateName(p.Name); err != nil {
		return err
	}
	if key, ok := trailingBackslash(p); ok {
		return errors.E(errors.Validation, fmt.Sprintf("%s must not end with a backslash", key), p.Name, nil)
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return errors.E(errors.IOError, "create profile dir", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+p.Name+".*.tmp")
	if err != nil {
		return errors.E(errors.IOError, "create temp file", s.dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.WriteString(marshal(p)); err != nil {
		tmp.Close()
		return errors.E(errors.IOError, "write profile", tmpName, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return errors.E(errors.IOError, "chmod profile", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.E(errors.IOError, "close profile", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path(p.Name)); err != nil {
		return errors.E(errors.IOError, "replace profile", s.path(p.Name), err)
	}

	s.logger.Info("saved profile", "profile", p.Name, "host", p.Destination())
	return nil
}

// Delete removes the profile. Deleting a profile that does not exist succeeds.
func (s *Store) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.E(errors.IOError, "delete profile", s.path(name), err)
	}
	s.logger.Info("deleted profile", "profile", name)
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+Extension)
}

// validateName rejects names that are not a single visible file name
func validateName(name string) error {
	switch {
	case name == "":
		return errors.E(errors.InvalidName, "profile name is empty", "", nil)
	case strings.HasPrefix(name, "."):
		return errors.E(errors.InvalidName, "profile name must not start with a dot", name, nil)
	case strings.ContainsAny(name, `/\`+"\x00"):
		return errors.E(errors.InvalidName, "profile name must not contain path separators", name, nil)
	}
	return nil
}

// trailingBackslash reports the first field ending in a backslash. The
// dotenv reader takes the closing quote after it as escaped, so such a file
// could not be read back.
func trailingBackslash(p models.Profile) (string, bool) {
	for _, kv := range [][2]string{
		{keyUsername, p.Username},
		{keyHostname, p.Hostname},
		{keyTargetPath, p.RemotePath},
	} {
		if strings.HasSuffix(kv[1], `\`) {
			return kv[0], true
		}
	}
	return "", false
}

// marshal renders p in dotenv form with double-quoted values
func marshal(p models.Profile) string {
	var b strings.Builder
	for _, kv := range [][2]string{
		{keyUsername, p.Username},
		{keyHostname, p.Hostname},
		{keyTargetPath, p.RemotePath},
	} {
		fmt.Fprintf(&b, "%s=\"%s\"\n", kv[0], quoteEscape(kv[1]))
	}
	return b.String()
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"\n", `\n`,
	"\r", `\r`,
)

func quoteEscape(s string) string {
	return quoteReplacer.Replace(s)
}
