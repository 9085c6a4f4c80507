package layerbom

// File is a file found in a layer filesystem.
type File struct {
	// Path is where in the layer filesystem the file is located.
	Path string `json:"path"`
	// FileType is a coarse classification (e.g. "SOURCE", "BINARY", "TEXT").
	// Empty when unknown.
	FileType string `json:"file_type,omitempty"`
	// Checksum is the primary checksum of the file contents.
	Checksum Digest `json:"checksum,omitzero"`
	// Checksums holds any additional checksums computed for the file.
	Checksums []Digest `json:"checksums,omitempty"`
	// Licenses is the raw license text found in the file, one entry per
	// finding. Entries may repeat.
	Licenses []string `json:"licenses,omitempty"`
	// LicenseExpressions holds license expressions reported by a scanner.
	LicenseExpressions []string `json:"license_expressions,omitempty"`
	Copyrights         []string `json:"copyrights,omitempty"`
	Authors            []string `json:"authors,omitempty"`
	Origins            Origins  `json:"origins,omitempty"`
}

// ChecksumType is the algorithm of the primary checksum.
func (f *File) ChecksumType() string { return f.Checksum.Algorithm() }

// Lookup returns the first recorded checksum made with the named algorithm.
func (f *File) Lookup(algo string) (Digest, bool) {
	if f.Checksum.Algorithm() == algo && len(f.Checksum.Checksum()) != 0 {
		return f.Checksum, true
	}
	for _, d := range f.Checksums {
		if d.Algorithm() == algo && len(d.Checksum()) != 0 {
			return d, true
		}
	}
	return Digest{}, false
}

// SHA1 returns the hex SHA1 of the file, if one was recorded.
func (f *File) SHA1() (string, bool) {
	d, ok := f.Lookup("sha1")
	if !ok {
		return "", false
	}
	return d.Hex(), true
}
