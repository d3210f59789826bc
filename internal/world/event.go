package world

// Event is the closed set of inputs that mutate the world. The reducer
// switches exhaustively over these four kinds; producers (the tick scheduler
// and the key input layer) only ever construct them.
type Event interface {
	isEvent()
}

// TimeAdvance moves the simulation to the given elapsed tick count.
// Elapsed values arrive monotonically increasing from the scheduler.
type TimeAdvance struct {
	Elapsed int64
}

// Rotate sets the craft's rotation input. Direction is the sign of the
// rotation (-1 counter-clockwise, +1 clockwise, 0 to release); the reducer
// scales it by the configured rotate rate.
type Rotate struct {
	Direction float64
}

// Thrust switches the craft's engine. While on, the craft accelerates along
// the orientation it had when the command arrived.
type Thrust struct {
	On bool
}

// Fire launches one projectile from the craft's nose.
type Fire struct{}

func (TimeAdvance) isEvent() {}
func (Rotate) isEvent()      {}
func (Thrust) isEvent()      {}
func (Fire) isEvent()        {}
