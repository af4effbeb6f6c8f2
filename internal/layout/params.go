package layout

const (
	DefaultNodeGap         = 100.0
	DefaultSpringK         = 0.08
	DefaultSpringDamping   = 0.06
	DefaultRepulsionK      = 1200.0
	DefaultRepulsionRadius = 260.0
	DefaultCollisionIters  = 2
	DefaultVelocityDamping = 0.7
	DefaultAnchorK         = 0.02
	DefaultBoundsPadding   = 40.0
)

// Params are the tunable force constants. NodeGap doubles as the spring
// rest length and the repulsion law's neutral distance.
type Params struct {
	NodeGap       float64 `yaml:"node_gap"`
	SpringK       float64 `yaml:"spring_k"`
	SpringDamping float64 `yaml:"spring_damping"`
	RepulsionK    float64 `yaml:"repulsion_k"`
	// RepulsionRadius is carried for parameter compatibility but is not
	// consulted by any force law.
	RepulsionRadius float64 `yaml:"repulsion_radius"`
	CollisionIters  int     `yaml:"collision_iters"`
	VelocityDamping float64 `yaml:"velocity_damping"`
	AnchorK         float64 `yaml:"anchor_k"`
	BoundsPadding   float64 `yaml:"bounds_padding"`
}

func DefaultParams() Params {
	return Params{
		NodeGap:         DefaultNodeGap,
		SpringK:         DefaultSpringK,
		SpringDamping:   DefaultSpringDamping,
		RepulsionK:      DefaultRepulsionK,
		RepulsionRadius: DefaultRepulsionRadius,
		CollisionIters:  DefaultCollisionIters,
		VelocityDamping: DefaultVelocityDamping,
		AnchorK:         DefaultAnchorK,
		BoundsPadding:   DefaultBoundsPadding,
	}
}
