// Package archive installs the grails framework home by unpacking the
// resources artifact into the project work directory.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/grails/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HomeInstaller = (*Installer)(nil)

const (
	homeDirName = "home"
	markerName  = ".resources-fingerprint"
	dirPerm     = 0o750
	filePerm    = 0o600
)

// loggingConfig is written next to the unpacked distribution so the launcher
// picks up a sane default log configuration.
const loggingConfig = `log4j = {
    error 'org.codehaus.groovy.grails'
    root {
        info 'stdout'
    }
}
`

// Installer unpacks the resources archive into <workDir>/home.
type Installer struct {
	logger ports.Logger
}

// NewInstaller creates a new Installer.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{logger: logger}
}

// Install unpacks the resources artifact and returns the framework home.
// A fingerprint of the archive content is recorded inside the home; when a
// later call finds a matching fingerprint the unpack is skipped entirely and
// reported as cached, so repeated task runs against the same distribution pay
// only a file read.
func (i *Installer) Install(_ context.Context, resources domain.Artifact, workDir string) (string, bool, error) {
	home := filepath.Join(workDir, homeDirName)
	marker := filepath.Join(home, markerName)

	fingerprint, err := archiveFingerprint(resources.Path)
	if err != nil {
		return "", false, err
	}

	if data, readErr := os.ReadFile(marker); readErr == nil && string(data) == fingerprint {
		return home, true, nil
	}

	// Stale or partial home. Rebuild from scratch so the marker never
	// vouches for a mixed tree.
	if err := os.RemoveAll(home); err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to clear framework home"), "home", home)
	}
	if err := unpack(resources.Path, home); err != nil {
		return "", false, zerr.With(err, "artifact", resources.Coordinate())
	}

	loggingPath := filepath.Join(home, "grails-logging.groovy")
	if err := os.WriteFile(loggingPath, []byte(loggingConfig), filePerm); err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to write logging config"), "path", loggingPath)
	}
	if err := os.WriteFile(marker, []byte(fingerprint), filePerm); err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to write fingerprint marker"), "path", marker)
	}

	i.logger.Info("installed grails home from " + resources.Coordinate())
	return home, false, nil
}

// archiveFingerprint computes the XXHash of the archive's content.
func archiveFingerprint(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the resolver cache
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open resources archive"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash resources archive"), "path", path)
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// unpack extracts the zip archive into dest, stripping the shared top-level
// directory grails distributions carry so bin/ lands directly under dest.
func unpack(archivePath, dest string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive"), "path", archivePath)
	}
	defer reader.Close() //nolint:errcheck // Best effort close in defer

	strip := commonRoot(reader.File)

	if err := os.MkdirAll(dest, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create framework home"), "home", dest)
	}

	for _, entry := range reader.File {
		name := strings.TrimPrefix(entry.Name, strip)
		if name == "" {
			continue
		}
		target := filepath.Join(dest, filepath.FromSlash(name))
		if !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
			return zerr.With(zerr.New("archive entry escapes destination"), "entry", entry.Name)
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, dirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", target)
			}
			continue
		}
		if err := extractFile(entry, target); err != nil {
			return err
		}
	}
	return nil
}

// extractFile writes a single archive entry, preserving its mode bits so the
// launcher scripts stay executable.
func extractFile(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(target))
	}

	src, err := entry.Open()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read archive entry"), "entry", entry.Name)
	}
	defer src.Close() //nolint:errcheck // Best effort close in defer

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode().Perm()) //nolint:gosec // Target is confined to the home above
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", target)
	}
	defer dst.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(dst, src); err != nil { //nolint:gosec // Distribution archives are trusted input
		return zerr.With(zerr.Wrap(err, "failed to extract file"), "path", target)
	}
	return nil
}

// commonRoot returns the "dir/" prefix shared by every entry, or "" when the
// archive has no single top-level directory.
func commonRoot(entries []*zip.File) string {
	root := ""
	for _, entry := range entries {
		segment, _, ok := strings.Cut(entry.Name, "/")
		if !ok {
			return ""
		}
		switch root {
		case "":
			root = segment
		case segment:
		default:
			return ""
		}
	}
	if root == "" {
		return ""
	}
	return root + "/"
}
