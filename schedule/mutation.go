package schedule

import "github.com/cpmech/gosl/rnd"

// Mutate relocates up to mutationSize randomly chosen classes to fresh
// random reservations, with probability probPct/100, then recomputes
// fitness. Unlike Crossover, Mutate modifies the receiver in place
// (§3 Lifecycle: "mutation... mutates in place on the receiver").
func (s *Schedule) Mutate(probPct float64, mutationSize int) {
	if !rnd.FlipCoin(probPct / 100) {
		s.CalculateFitness()
		return
	}
	n := s.NumberOfClasses()
	if n == 0 {
		s.CalculateFitness()
		return
	}
	for i := 0; i < mutationSize; i++ {
		pos := rnd.IntGetUniqueN(0, n, 1)[0]
		s.Repair(pos, nil)
	}
	s.CalculateFitness()
}
