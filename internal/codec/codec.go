package codec

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"recipebox/internal/domain"
)

// Importer decodes a snapshot from a given format
type Importer interface {
	Parse(r io.Reader) (*domain.Snapshot, error)
	Format() string
}

// Exporter encodes a snapshot to a given format
type Exporter interface {
	Export(snap *domain.Snapshot, w io.Writer) error
	Format() string
}

// Codec both imports and exports
type Codec interface {
	Importer
	Exporter
}

// ErrUnsupportedFormat is returned for a format with no registered codec
var ErrUnsupportedFormat = errors.New("unsupported format")

var codecs = map[string]Codec{
	"json": NewJSONCodec(),
	"yaml": NewYAMLCodec(),
	"yml":  NewYAMLCodec(),
}

// ForFormat returns the codec registered for format
func ForFormat(format string) (Codec, error) {
	c, ok := codecs[format]
	if !ok {
		return nil, fmt.Errorf("%w %q (supported: %v)", ErrUnsupportedFormat, format, Formats())
	}
	return c, nil
}

// Formats lists the supported format names
func Formats() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// normalize fills defaults after decoding
func normalize(snap *domain.Snapshot) *domain.Snapshot {
	if snap.Version == 0 {
		snap.Version = domain.SnapshotVersion
	}
	if snap.List == nil {
		snap.List = make([]domain.ListItem, 0)
	}
	if snap.Likes == nil {
		snap.Likes = make([]domain.Like, 0)
	}
	return snap
}

func checkVersion(snap *domain.Snapshot) error {
	if snap.Version > domain.SnapshotVersion {
		return fmt.Errorf("snapshot version %d is newer than supported version %d", snap.Version, domain.SnapshotVersion)
	}
	return nil
}
