// Package lpmodel builds and solves the month-indexed linear program that
// maximizes the minimum monthly percent-of-need-fed across months. The LP
// covers kcals only: it has no fat or protein humans-fed variables, and
// IncludeFat/IncludeProtein do not change it. The solver contract is kept deliberately
// narrow -- (variable, lb, ub, name), (linear expression relation scalar,
// name), maximize(expr) -- so that a binding to CBC, HiGHS, GLPK, or any
// other LP backend could satisfy it; the shipped implementation binds to
// gonum's simplex solver.
package lpmodel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Relation is the comparison a Constraint enforces between its linear
// expression and its right-hand side.
type Relation int

const (
	LE Relation = iota
	GE
	EQ
)

// Term is one coefficient-times-variable summand of a linear expression.
type Term struct {
	VarIndex int
	Coef     float64
}

// Expr is a linear combination of problem variables.
type Expr []Term

// Var describes one LP decision variable and its bounds.
type Var struct {
	Name   string
	LB, UB float64
}

// Constraint is a named linear expression related to a scalar bound.
type Constraint struct {
	Name     string
	Expr     Expr
	Relation Relation
	RHS      float64
}

// Problem is a solver-agnostic linear program: a set of bounded variables,
// a set of linear constraints, and a single linear objective to maximize
// or minimize. Nothing here depends on gonum except Solve.
type Problem struct {
	vars        []Var
	constraints []Constraint
	objective   Expr
	maximize    bool
}

// NewProblem returns an empty problem.
func NewProblem() *Problem { return &Problem{} }

// AddVar registers a new bounded variable and returns its index, for use
// in Expr terms.
func (p *Problem) AddVar(name string, lb, ub float64) int {
	p.vars = append(p.vars, Var{Name: name, LB: lb, UB: ub})
	return len(p.vars) - 1
}

// AddConstraint registers a named linear constraint.
func (p *Problem) AddConstraint(name string, expr Expr, rel Relation, rhs float64) {
	p.constraints = append(p.constraints, Constraint{Name: name, Expr: expr, Relation: rel, RHS: rhs})
}

// SetObjective sets the linear expression to maximize (or minimize).
func (p *Problem) SetObjective(expr Expr, maximize bool) {
	p.objective = expr
	p.maximize = maximize
}

// NVars returns the number of registered variables.
func (p *Problem) NVars() int { return len(p.vars) }

// Solution is the result of solving a Problem.
type Solution struct {
	Values         []float64
	ObjectiveValue float64
	Optimal        bool
}

// ValueOf returns the solved value of the variable at varIndex.
func (s *Solution) ValueOf(varIndex int) float64 { return s.Values[varIndex] }

// ConstraintResidual is one constraint's margin at a solved point: its
// linear expression evaluated at the solution, minus its right-hand side.
// Zero (within tolerance) for a binding equality.
type ConstraintResidual struct {
	Name     string
	Relation Relation
	Residual float64
}

// Residuals independently re-evaluates every registered constraint against
// a solution, so a caller can verify the solver's bookkeeping rather than
// trust it -- stock-balance equalities should all close to zero.
func (p *Problem) Residuals(sol *Solution) []ConstraintResidual {
	out := make([]ConstraintResidual, len(p.constraints))
	for i, c := range p.constraints {
		var lhs float64
		for _, t := range c.Expr {
			lhs += t.Coef * sol.ValueOf(t.VarIndex)
		}
		out[i] = ConstraintResidual{Name: c.Name, Relation: c.Relation, Residual: lhs - c.RHS}
	}
	return out
}

// Solve converts the problem to the standard equality form gonum's
// simplex expects (x >= 0, Ax = b) by shifting each variable by its lower
// bound, adding an upper-bound row per variable with a slack, and adding
// a slack or surplus variable per inequality constraint, then solves it.
func (p *Problem) Solve() (*Solution, error) {
	nOrig := len(p.vars)

	// slack/surplus columns: one per inequality constraint, plus one per
	// finite upper bound (expressed as an extra "<=" row).
	type row struct {
		coefs map[int]float64
		rel   Relation
		rhs   float64
	}
	rows := make([]row, 0, len(p.constraints)+nOrig)

	for _, c := range p.constraints {
		coefs := make(map[int]float64, len(c.Expr))
		rhs := c.RHS
		for _, t := range c.Expr {
			coefs[t.VarIndex] += t.Coef
		}
		// shift by each variable's lower bound: sum(coef*(y+lb)) rel rhs
		// => sum(coef*y) rel rhs - sum(coef*lb)
		for idx, coef := range coefs {
			rhs -= coef * p.vars[idx].LB
		}
		rows = append(rows, row{coefs: coefs, rel: c.Relation, rhs: rhs})
	}

	for idx, v := range p.vars {
		if !isFinite(v.UB) {
			continue
		}
		rows = append(rows, row{coefs: map[int]float64{idx: 1}, rel: LE, rhs: v.UB - v.LB})
	}

	nSlack := 0
	for _, r := range rows {
		if r.rel != EQ {
			nSlack++
		}
	}

	nCols := nOrig + nSlack
	A := mat.NewDense(len(rows), nCols, nil)
	b := make([]float64, len(rows))

	// A GE row ("expr >= rhs") is flipped to LE ("-expr <= -rhs") before a
	// slack is added, so every inequality row ends up in <= form with a
	// nonnegative slack coefficient of +1.
	slackCol := nOrig
	for i, r := range rows {
		sign := 1.0
		if r.rel == GE {
			sign = -1.0
		}
		for idx, coef := range r.coefs {
			A.Set(i, idx, coef*sign)
		}
		if r.rel != EQ {
			A.Set(i, slackCol, 1)
			slackCol++
		}
		b[i] = r.rhs * sign

		// gonum's simplex implementation assumes b >= 0.
		if b[i] < 0 {
			for j := 0; j < nCols; j++ {
				A.Set(i, j, -A.At(i, j))
			}
			b[i] = -b[i]
		}
	}

	c := make([]float64, nCols)
	for _, t := range p.objective {
		if p.maximize {
			c[t.VarIndex] = -t.Coef
		} else {
			c[t.VarIndex] = t.Coef
		}
	}

	_, x, err := lp.Simplex(c, A, b, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("lpmodel: simplex solve failed: %v", err)
	}

	values := make([]float64, nOrig)
	var objVal float64
	for i := 0; i < nOrig; i++ {
		values[i] = x[i] + p.vars[i].LB
	}
	for _, t := range p.objective {
		objVal += t.Coef * values[t.VarIndex]
	}

	return &Solution{Values: values, ObjectiveValue: objVal, Optimal: true}, nil
}

func isFinite(v float64) bool { return v == v && v < 1e18 && v > -1e18 }
