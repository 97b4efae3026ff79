package page

// PageSet is an ordered list of pages plus the archive they are replayed from
// by default.
type PageSet struct {
	Name string
	// ArchiveDataFile is the default replay archive for every page.
	ArchiveDataFile string
	// BaseDir is the directory relative archive paths are resolved against.
	BaseDir string
	// UserStories in the order they run.
	UserStories []*Page
}

// NewPageSet returns an empty page set.
func NewPageSet(name, archiveDataFile string) *PageSet {
	return &PageSet{
		Name:            name,
		ArchiveDataFile: archiveDataFile,
	}
}

// AddUserStory appends p and makes ps its owner.
func (ps *PageSet) AddUserStory(p *Page) {
	p.PageSet = ps
	ps.UserStories = append(ps.UserStories, p)
}

// AddURLs adds one page per url with default behavior.
func (ps *PageSet) AddURLs(urls ...string) {
	for _, u := range urls {
		ps.AddUserStory(New(u, ps))
	}
}

// Pages returns the user stories.
func (ps *PageSet) Pages() []*Page {
	return ps.UserStories
}

// Len returns the number of pages.
func (ps *PageSet) Len() int {
	return len(ps.UserStories)
}

// Copy returns a deep copy of ps. Pages in the copy point at the copy.
func (ps *PageSet) Copy() *PageSet {
	rv := &PageSet{
		Name:            ps.Name,
		ArchiveDataFile: ps.ArchiveDataFile,
		BaseDir:         ps.BaseDir,
		UserStories:     make([]*Page, 0, len(ps.UserStories)),
	}
	for _, p := range ps.UserStories {
		c := p.Copy()
		c.PageSet = rv
		rv.UserStories = append(rv.UserStories, c)
	}
	return rv
}

// FilterByLabel returns a copy of ps holding only the pages labeled label. An
// empty label returns an unfiltered copy.
func (ps *PageSet) FilterByLabel(label string) *PageSet {
	rv := ps.Copy()
	if label == "" {
		return rv
	}
	kept := rv.UserStories[:0]
	for _, p := range rv.UserStories {
		if p.HasLabel(label) {
			kept = append(kept, p)
		}
	}
	rv.UserStories = kept
	return rv
}
