package irpost

// Release holds the fields extracted from a press release page.
// A nil field means its marker was not found on the page.
type Release struct {
	Title *string
	Intro *string

	// Body is the body element's HTML, tags included.
	Body *string
}

// Empty reports whether no field was found.
func (r *Release) Empty() bool {
	return r.Title == nil && r.Intro == nil && r.Body == nil
}

// Content joins intro and body with a line break, the form published as
// the post content. Absent parts contribute nothing.
func (r *Release) Content() string {
	return deref(r.Intro) + "<br>" + deref(r.Body)
}

// ReleaseExtractor pulls a press release out of an article page.
type ReleaseExtractor interface {
	// ExtractRelease parses the page HTML. It never fails; fields whose
	// markers are missing are left nil.
	ExtractRelease(html string) *Release
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
