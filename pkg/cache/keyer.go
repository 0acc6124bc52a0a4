package cache

// LayoutKeyOpts lists the options that change a computed layout.
type LayoutKeyOpts struct {
	VizType string  `json:"viz_type"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// ArtifactKeyOpts lists the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Lanes  bool   `json:"lanes,omitempty"`
	Labels bool   `json:"labels,omitempty"`
	Cycles bool   `json:"cycles,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	// SnapshotKey identifies a pattern snapshot loaded from a source.
	SnapshotKey(source, ref string) string

	// LayoutKey identifies a layout of the snapshot with the given hash.
	LayoutKey(snapshotHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendering of the layout with the given hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SnapshotKey returns "snapshot:<source>:<ref>".
func (DefaultKeyer) SnapshotKey(source, ref string) string {
	return "snapshot:" + source + ":" + ref
}

// LayoutKey hashes the snapshot hash together with opts.
func (DefaultKeyer) LayoutKey(snapshotHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", snapshotHash, opts)
}

// ArtifactKey hashes the layout hash together with opts.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
