package lpmodel

import (
	"math"
	"testing"
)

func closeEnough(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// TestSolveSimpleMaxMin checks the bare Problem/Solve machinery against a
// textbook max-min: maximize z subject to z <= x, z <= y, x+y <= 10,
// x,y >= 0. The optimum splits x=y=5, z=5.
func TestSolveSimpleMaxMin(t *testing.T) {
	p := NewProblem()
	x := p.AddVar("x", 0, 1e18)
	y := p.AddVar("y", 0, 1e18)
	z := p.AddVar("z", 0, 1e18)

	p.AddConstraint("z_le_x", Expr{{z, 1}, {x, -1}}, LE, 0)
	p.AddConstraint("z_le_y", Expr{{z, 1}, {y, -1}}, LE, 0)
	p.AddConstraint("sum_cap", Expr{{x, 1}, {y, 1}}, LE, 10)

	p.SetObjective(Expr{{z, 1}}, true)

	sol, err := p.Solve()
	if err != nil {
		t.Fatalf("unexpected solve error: %v", err)
	}
	if !closeEnough(sol.ObjectiveValue, 5, 1e-6) {
		t.Errorf("want objective 5, got %v", sol.ObjectiveValue)
	}
	if !closeEnough(sol.ValueOf(x)+sol.ValueOf(y), 10, 1e-6) {
		t.Errorf("want x+y == 10 at the optimum, got %v", sol.ValueOf(x)+sol.ValueOf(y))
	}
}

func TestSolveRespectsLowerBound(t *testing.T) {
	p := NewProblem()
	x := p.AddVar("x", 3, 20)
	p.SetObjective(Expr{{x, -1}}, true) // maximize -x => minimize x => should hit the lower bound

	sol, err := p.Solve()
	if err != nil {
		t.Fatalf("unexpected solve error: %v", err)
	}
	if !closeEnough(sol.ValueOf(x), 3, 1e-6) {
		t.Errorf("want x at its lower bound 3, got %v", sol.ValueOf(x))
	}
}
