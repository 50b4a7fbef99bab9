package invalidate

// Pipeline is an in-memory Review used when no external review service is wired
type Pipeline struct {
	loaded      bool
	revision    int
	showUpdated bool
}

// NewPipeline returns a loaded pipeline at revision 0
func NewPipeline() *Pipeline { return &Pipeline{loaded: true} }

// Loaded implements Review
func (p *Pipeline) Loaded() bool { return p != nil && p.loaded }

// Revision implements Review
func (p *Pipeline) Revision() int { return p.revision }

// ShowUpdated implements Review
func (p *Pipeline) ShowUpdated() bool { return p.showUpdated }

// SetRevision implements Review; revisions never go backwards
func (p *Pipeline) SetRevision(rev int) {
	if rev > p.revision {
		p.revision = rev
	}
}

// SetShowUpdated implements Review
func (p *Pipeline) SetShowUpdated(v bool) { p.showUpdated = v }

// SetLoaded toggles availability (an unloaded pipeline behaves like a missing one)
func (p *Pipeline) SetLoaded(v bool) { p.loaded = v }
