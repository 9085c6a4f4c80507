package layerbom

// Template maps model attributes to the field names used by one report
// format. It is the only place a format's vocabulary touches the model.
//
// A field left empty means the format has no use for that attribute and the
// corresponding key is not produced by the Fields methods.
type Template struct {
	Image   ImageTemplate
	File    FileTemplate
	Package PackageTemplate
}

// ImageTemplate names the image attributes.
type ImageTemplate struct {
	Name    string
	Version string
}

// FileTemplate names the file attributes.
type FileTemplate struct {
	Name string
	Type string
}

// PackageTemplate names the package attributes. SourceName and
// SourceVersion are used for the source package of a binary package.
type PackageTemplate struct {
	Name             string
	Version          string
	License          string
	Copyright        string
	DownloadLocation string
	Supplier         string
	SourceName       string
	SourceVersion    string
}

type fields map[string]string

func (m fields) set(k, v string) {
	if k != "" {
		m[k] = v
	}
}

// Fields flattens the image into t's vocabulary.
func (i *Image) Fields(t *Template) map[string]string {
	m := make(fields, 2)
	m.set(t.Image.Name, i.Name)
	m.set(t.Image.Version, i.Tag)
	return m
}

// Fields flattens the file into t's vocabulary.
func (f *File) Fields(t *Template) map[string]string {
	m := make(fields, 2)
	m.set(t.File.Name, f.Path)
	m.set(t.File.Type, f.FileType)
	return m
}

// Fields flattens the package into t's vocabulary. The source package
// attributes are included when the package records one.
func (p *Package) Fields(t *Template) map[string]string {
	m := make(fields, 8)
	m.set(t.Package.Name, p.Name)
	m.set(t.Package.Version, p.Version)
	m.set(t.Package.License, p.License)
	m.set(t.Package.Copyright, p.Copyright)
	dl := p.DownloadURL
	if dl == "" {
		dl = p.ProjectURL
	}
	m.set(t.Package.DownloadLocation, dl)
	m.set(t.Package.Supplier, p.Supplier)
	if n, v := p.SourceName(); n != "" {
		m.set(t.Package.SourceName, n)
		m.set(t.Package.SourceVersion, v)
	}
	return m
}
