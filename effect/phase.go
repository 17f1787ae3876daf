package effect

// Phase is the bridge state. The set of implementations is closed
type Phase interface {
	phase()
	String() string
}

// Idle waits for a trigger
type Idle struct{}

// Pending holds an accepted request until the activation step of the same frame
type Pending struct {
	RequestedAt float64
}

// Active is a running bridge
type Active struct {
	Start    float64 // Simulation seconds
	Progress float64 // [0, 1]

	spawnAccum float64
}

func (Idle) phase()    {}
func (Pending) phase() {}
func (*Active) phase() {}

func (Idle) String() string    { return "idle" }
func (Pending) String() string { return "pending" }
func (*Active) String() string { return "active" }
