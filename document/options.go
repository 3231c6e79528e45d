package document

// Option configures a Document's tolerance and compatibility switches.
// Unexported config keeps the zero value meaningless outside this package;
// always construct through New or ReadFBX.
type Option func(*config)

type config struct {
	maxVersion          int32
	legacyObjectNames   bool
	animationStopBug    bool
	preferSmallerJoint  bool
}

func defaultConfig() config {
	return config{
		maxVersion:         7700,
		legacyObjectNames:  true,
		animationStopBug:   false,
		preferSmallerJoint: true,
	}
}

// WithMaxVersion overrides the highest accepted file version (default 7700,
// the last version this implementation was tested against; §1 Non-goals).
func WithMaxVersion(v int32) Option {
	return func(c *config) { c.maxVersion = v }
}

// WithLegacyObjectNames toggles resolving Connections entries whose
// endpoints are display-name strings rather than object ids, including the
// magic "Scene\x00\x01Model" alias for the root. Enabled by default; see §9.
func WithLegacyObjectNames(enabled bool) Option {
	return func(c *config) { c.legacyObjectNames = enabled }
}

// WithAnimationStopBug reproduces the source bug where an AnimationStack's
// stop time is computed as min(start, stopTime) instead of max. Disabled by
// default; §9 flags this as a bug to mirror only behind a compatibility
// switch, never silently.
func WithAnimationStopBug(enabled bool) Option {
	return func(c *config) { c.animationStopBug = enabled }
}

// WithFixedWeightTieBreak records a tie-break preference on the Document's
// config (true, the default, means "prefer smaller cluster index"). Nothing
// reads this setting: deform.FixedJointWeights takes its tie-break as an
// explicit argument.
func WithFixedWeightTieBreak(preferSmallerClusterIndex bool) Option {
	return func(c *config) { c.preferSmallerJoint = preferSmallerClusterIndex }
}
