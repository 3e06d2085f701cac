package metrics

import "fmt"

// Agent kinds understood by the experiment runner.
const (
	Random     = "random"
	Simple     = "simple"
	Better     = "better"
	MonteCarlo = "montecarlo"
)

// AgentConfig describes one participant of an experiment.
type AgentConfig struct {
	ID       int
	Kind     string
	Rollouts int    // MonteCarlo only
	PerMove  bool   // MonteCarlo only: n rollouts per candidate
	Seed     uint64 // 0 picks a seed from the clock
}

func (c AgentConfig) IsValid() bool {
	switch c.Kind {
	case Random, Simple, Better:
		return c.ID >= 0
	case MonteCarlo:
		return c.ID >= 0 && c.Rollouts > 0
	}
	return false
}

func (c AgentConfig) String() string {
	if c.Kind == MonteCarlo && c.PerMove {
		return fmt.Sprintf("%d:%s(%d per move)", c.ID, c.Kind, c.Rollouts)
	}
	if c.Kind == MonteCarlo {
		return fmt.Sprintf("%d:%s(%d)", c.ID, c.Kind, c.Rollouts)
	}
	return fmt.Sprintf("%d:%s", c.ID, c.Kind)
}
