package domain

// SnapshotVersion is the current snapshot format version
const SnapshotVersion = 1

// Snapshot is the exported form of the persisted collections
type Snapshot struct {
	Version int        `json:"version" yaml:"version"`
	List    []ListItem `json:"list" yaml:"list"`
	Likes   []Like     `json:"likes" yaml:"likes"`
}

// NewSnapshot creates an empty snapshot at the current version
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version: SnapshotVersion,
		List:    make([]ListItem, 0),
		Likes:   make([]Like, 0),
	}
}
