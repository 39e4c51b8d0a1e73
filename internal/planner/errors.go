package planner

import "errors"

// ErrInfeasible is returned when no combination of plant states sums exactly
// to the requested load. The planner never partially commits: on
// infeasibility no allocation is returned alongside this error.
var ErrInfeasible = errors.New("no feasible solution for the requested load")
