package layerbom

// Notice is a single message recorded while an object was being analyzed.
type Notice struct {
	// Level is the severity, e.g. "info", "warning" or "error".
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NoticeOrigin groups the notices that came from one place, such as a
// command library lookup or a layer extraction step.
type NoticeOrigin struct {
	Origin  string   `json:"origin"`
	Notices []Notice `json:"notices,omitempty"`
}

// Origins is an ordered list of notice origins.
type Origins []NoticeOrigin

// Add appends a notice under origin, creating the origin if it does not
// exist yet. Order of first appearance is kept.
func (o *Origins) Add(origin string, n Notice) {
	for i := range *o {
		if (*o)[i].Origin == origin {
			(*o)[i].Notices = append((*o)[i].Notices, n)
			return
		}
	}
	*o = append(*o, NoticeOrigin{Origin: origin, Notices: []Notice{n}})
}

// IsEmpty reports whether there are no origins at all.
func (o Origins) IsEmpty() bool { return len(o) == 0 }
