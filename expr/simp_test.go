package expr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type sv string

func v(name string) BoolExpr[sv] { return BVar[sv]{Var: sv(name)} }
func iv(name string) IntExpr[sv] { return IVar[sv]{Var: sv(name)} }

func TestSimplifyNot(t *testing.T) {
	cases := []struct {
		name string
		in   BoolExpr[sv]
		want BoolExpr[sv]
	}{
		{"not true", BNot[sv]{X: BLit[sv]{Value: true}}, BLit[sv]{Value: false}},
		{"not false", BNot[sv]{X: BLit[sv]{Value: false}}, BLit[sv]{Value: true}},
		{"double not", BNot[sv]{X: BNot[sv]{X: v("x")}}, v("x")},
		{"not gt", BNot[sv]{X: BGt[sv]{L: iv("a"), R: iv("b")}}, BLe[sv]{L: iv("a"), R: iv("b")}},
		{"not implies", BNot[sv]{X: BImplies[sv]{Ante: v("p"), Cons: v("q")}},
			BAnd[sv]{Args: []BoolExpr[sv]{v("p"), BNot[sv]{X: v("q")}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SimplifyBool[sv](c.in)
			if !BoolEqual(got, c.want) {
				t.Errorf("SimplifyBool(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestSimplifyImplication(t *testing.T) {
	F := BLit[sv]{Value: false}
	T := BLit[sv]{Value: true}
	if got := SimplifyBool[sv](BImplies[sv]{Ante: F, Cons: v("x")}); !BoolEqual(got, T) {
		t.Errorf("F=>_ got %v", got)
	}
	if got := SimplifyBool[sv](BImplies[sv]{Ante: v("x"), Cons: T}); !BoolEqual(got, T) {
		t.Errorf("_=>T got %v", got)
	}
	if got := SimplifyBool[sv](BImplies[sv]{Ante: T, Cons: v("y")}); !BoolEqual(got, v("y")) {
		t.Errorf("T=>y got %v", got)
	}
	if got := SimplifyBool[sv](BImplies[sv]{Ante: v("x"), Cons: F}); !BoolEqual(got, BNot[sv]{X: v("x")}) {
		t.Errorf("x=>F got %v", got)
	}
}

func TestSimplifyShortCircuit(t *testing.T) {
	T := BLit[sv]{Value: true}
	F := BLit[sv]{Value: false}

	or := BOr[sv]{Args: []BoolExpr[sv]{v("a"), T, v("b")}}
	if got := SimplifyBool[sv](or); !BoolEqual(got, T) {
		t.Errorf("or with T = %v, want T", got)
	}

	and := BAnd[sv]{Args: []BoolExpr[sv]{v("a"), F, v("b")}}
	if got := SimplifyBool[sv](and); !BoolEqual(got, F) {
		t.Errorf("and with F = %v, want F", got)
	}

	singleton := BOr[sv]{Args: []BoolExpr[sv]{v("a")}}
	if got := SimplifyBool[sv](singleton); !BoolEqual(got, v("a")) {
		t.Errorf("singleton or = %v, want a", got)
	}

	empty := BOr[sv]{Args: nil}
	if got := SimplifyBool[sv](empty); !BoolEqual(got, F) {
		t.Errorf("empty or = %v, want F", got)
	}

	nested := BOr[sv]{Args: []BoolExpr[sv]{v("a"), BOr[sv]{Args: []BoolExpr[sv]{v("b"), v("c")}}}}
	want := BOr[sv]{Args: []BoolExpr[sv]{v("a"), v("b"), v("c")}}
	if got := SimplifyBool[sv](nested); !BoolEqual(got, want) {
		t.Errorf("flatten nested or = %v, want %v", got, want)
	}
}

func TestSimplifyDedup(t *testing.T) {
	and := BAnd[sv]{Args: []BoolExpr[sv]{v("a"), v("b"), v("a")}}
	want := BAnd[sv]{Args: []BoolExpr[sv]{v("a"), v("b")}}
	if got := SimplifyBool[sv](and); !BoolEqual(got, want) {
		t.Errorf("dedup = %v, want %v", got, want)
	}

	eqSym := BAnd[sv]{Args: []BoolExpr[sv]{
		BEqInt[sv]{L: iv("x"), R: iv("y")},
		BEqInt[sv]{L: iv("y"), R: iv("x")},
	}}
	if got := SimplifyBool[sv](eqSym); len(got.(BEqInt[sv]).L.(IVar[sv]).Var) == 0 {
		t.Fatalf("unexpected shape %v", got)
	} else if _, ok := got.(BEqInt[sv]); !ok {
		t.Errorf("expected single equality after symmetric dedup, got %v", got)
	}
}

func TestSimplifyReflexivity(t *testing.T) {
	T := BLit[sv]{Value: true}
	if got := SimplifyBool[sv](BEqInt[sv]{L: iv("x"), R: iv("x")}); !BoolEqual(got, T) {
		t.Errorf("x=x = %v, want T", got)
	}
	if got := SimplifyBool[sv](BGe[sv]{L: iv("x"), R: iv("x")}); !BoolEqual(got, T) {
		t.Errorf("x>=x = %v, want T", got)
	}
	if got := SimplifyBool[sv](BLe[sv]{L: iv("x"), R: iv("x")}); !BoolEqual(got, T) {
		t.Errorf("x<=x = %v, want T", got)
	}
}

func TestSimplifyEqBoolLiteral(t *testing.T) {
	if got := SimplifyBool[sv](BEqBool[sv]{L: v("x"), R: BLit[sv]{Value: true}}); !BoolEqual(got, v("x")) {
		t.Errorf("x=T = %v, want x", got)
	}
	if got := SimplifyBool[sv](BEqBool[sv]{L: v("x"), R: BLit[sv]{Value: false}}); !BoolEqual(got, BNot[sv]{X: v("x")}) {
		t.Errorf("x=F = %v, want !x", got)
	}
}

// TestSimplifyIdempotent exercises the quantified property from spec §8:
// simp(simp(e)) == simp(e).
func TestSimplifyIdempotent(t *testing.T) {
	exprs := []BoolExpr[sv]{
		BNot[sv]{X: BAnd[sv]{Args: []BoolExpr[sv]{v("a"), v("b")}}},
		BImplies[sv]{Ante: v("p"), Cons: BOr[sv]{Args: []BoolExpr[sv]{v("q"), BLit[sv]{Value: false}}}},
		BAnd[sv]{Args: []BoolExpr[sv]{v("a"), v("a"), BNot[sv]{X: BNot[sv]{X: v("b")}}}},
		BEqBool[sv]{L: BEqInt[sv]{L: iv("x"), R: iv("x")}, R: BLit[sv]{Value: true}},
	}
	for i, e := range exprs {
		once := SimplifyBool[sv](e)
		twice := SimplifyBool[sv](once)
		if diff := cmp.Diff(once, twice,
			cmp.Comparer(func(a, b BoolExpr[sv]) bool { return BoolEqual(a, b) }),
		); diff != "" {
			t.Errorf("case %d not idempotent (-once +twice):\n%s", i, diff)
		}
	}
}
