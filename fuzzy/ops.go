package fuzzy

// clamp01 forces x into [0,1]; operators apply it to every result so that
// floating-point drift never escapes the algebra.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Not negates a Value: Not(t,f) = (f,t).
func Not(x Value) Value {
	checkRange(x)
	return Value{T: x.F, F: x.T}
}

// And combines two Values under the Łukasiewicz t-norm:
//
//	T' = max(0, T1+T2-1)
//	F' = min(1, F1+F2)
func And(x, y Value) Value {
	checkRange(x)
	checkRange(y)
	return Value{
		T: clamp01(max0(x.T + y.T - 1)),
		F: clamp01(min1(x.F + y.F)),
	}
}

// Or combines two Values under the Łukasiewicz t-conorm:
//
//	T' = min(1, T1+T2)
//	F' = max(0, F1+F2-1)
func Or(x, y Value) Value {
	checkRange(x)
	checkRange(y)
	return Value{
		T: clamp01(min1(x.T + y.T)),
		F: clamp01(max0(x.F + y.F - 1)),
	}
}

// Implies returns x → y, defined as Or(Not(x), y).
func Implies(x, y Value) Value {
	return Or(Not(x), y)
}

// Iff returns the biconditional x ↔ y, defined as And(Implies(x,y), Implies(y,x)).
func Iff(x, y Value) Value {
	return And(Implies(x, y), Implies(y, x))
}

// AndN folds And over vs left-to-right. AndN() with no arguments returns
// True, the identity of AND (the "empty AND is TRUE" rule of formula CNF).
func AndN(vs ...Value) Value {
	acc := True
	for _, v := range vs {
		acc = And(acc, v)
	}
	return acc
}

// OrN folds Or over vs left-to-right. OrN() with no arguments returns
// False, the identity of OR (the "empty OR is FALSE" rule of formula CNF).
func OrN(vs ...Value) Value {
	acc := False
	for _, v := range vs {
		acc = Or(acc, v)
	}
	return acc
}

// Similarity measures closeness between a user-asserted Value u and a
// matrix-evaluated Value m using L1 distance on the (T,F) plane:
//
//	sim(u,m) = 1 - ½·(|Tu-Tm| + |Fu-Fm|)
//
// sim is symmetric under simultaneous negation of both operands
// (Not(u),Not(m) gives the same result as u,m), equals 1 when u == m, and
// equals 0 for sim(True,False). See match.Score for how it is aggregated
// across needs into a per-object ranking score.
func Similarity(u, m Value) float64 {
	checkRange(u)
	checkRange(m)
	dt := absf(u.T - m.T)
	df := absf(u.F - m.F)
	return clamp01(1 - 0.5*(dt+df))
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func max0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

func min1(x float64) float64 {
	if x > 1 {
		return 1
	}
	return x
}
