package layerbom

// Image is a scanned container image.
type Image struct {
	// Name is the repository name, e.g. "golang" or "quay.io/foo/bar".
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
	// ID overrides the human-readable id derived from Name and Tag.
	ID      string   `json:"id,omitempty"`
	Layers  []*Layer `json:"layers,omitempty"`
	Origins Origins  `json:"origins,omitempty"`
}

// HumanReadableID is a short name for the image suitable for building
// identifiers, "name-tag" unless ID is set.
func (i *Image) HumanReadableID() string {
	switch {
	case i.ID != "":
		return i.ID
	case i.Tag != "":
		return i.Name + "-" + i.Tag
	default:
		return i.Name
	}
}

// Reference is the "name:tag" form of the image.
func (i *Image) Reference() string {
	if i.Tag == "" {
		return i.Name
	}
	return i.Name + ":" + i.Tag
}
