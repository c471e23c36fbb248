package cint

import "testing"

// recordPtr is the pointer side of a generated record.
type recordPtr[C any, A any] interface {
	*C
	SetArray(A)
	ArrayPtr() *A
}

// testRecord1 checks the layout and conversion invariants shared by every
// one-component record: array round trips, field order, the memory view,
// equality, the alpha wrappers and the slice views.
func testRecord1[T Component, C Color1[T], PC recordPtr[C, [1]T]](t *testing.T, space Space, from func([1]T) C, fields func(*C) []*T) {
	t.Helper()

	want := [1]T{1}
	c := from(want)
	if got := c.Array(); got != want {
		t.Errorf("%s: Array() = %v, want %v", space, got, want)
	}
	if got := c.Space(); got != space {
		t.Errorf("%s: Space() = %s", space, got)
	}
	if n := space.NumComponents(); n != 1 {
		t.Errorf("%s: NumComponents() = %d, want 1", space, n)
	}
	fs := fields(&c)
	if len(fs) != 1 {
		t.Fatalf("%s: %d fields, want 1", space, len(fs))
	}
	for i, f := range fs {
		if *f != want[i] {
			t.Errorf("%s: field %d = %v, want %v", space, i, *f, want[i])
		}
		if got := c.Component(i); got != want[i] {
			t.Errorf("%s: Component(%d) = %v, want %v", space, i, got, want[i])
		}
	}

	// The array view aliases the fields.
	p := PC(&c).ArrayPtr()
	if *p != want {
		t.Errorf("%s: *ArrayPtr() = %v, want %v", space, *p, want)
	}
	for i, f := range fs {
		p[i] = T(10 + i)
		if *f != T(10+i) {
			t.Errorf("%s: write through ArrayPtr()[%d] not visible in field", space, i)
		}
	}
	PC(&c).SetArray(want)
	if c != from(want) {
		t.Errorf("%s: SetArray(%v) = %v", space, want, c)
	}

	// Changing any one component breaks equality.
	for i := range 1 {
		d := from(want)
		*fields(&d)[i]++
		if d == c {
			t.Errorf("%s: records differing in component %d compare equal", space, i)
		}
	}

	wantAlpha := [2]T{1, 2}
	a := AlphaFromArray1[C, T, PC](wantAlpha)
	if a.Color != c || a.Alpha != 2 {
		t.Errorf("%s: AlphaFromArray1(%v) = %+v", space, wantAlpha, a)
	}
	if got := AlphaToArray1(a); got != wantAlpha {
		t.Errorf("%s: AlphaToArray1() = %v, want %v", space, got, wantAlpha)
	}
	ap := AlphaArrayPtr1(&a)
	if *ap != wantAlpha {
		t.Errorf("%s: *AlphaArrayPtr1() = %v, want %v", space, *ap, wantAlpha)
	}
	ap[1] = 9
	if a.Alpha != 9 {
		t.Errorf("%s: alpha not last in AlphaArrayPtr1()", space)
	}
	if a.Space() != space {
		t.Errorf("%s: Alpha.Space() = %s", space, a.Space())
	}

	pa := PremultipliedFromArray1[C, T, PC](wantAlpha)
	if pa.Color != c || pa.Alpha != 2 {
		t.Errorf("%s: PremultipliedFromArray1(%v) = %+v", space, wantAlpha, pa)
	}
	if got := PremultipliedToArray1(pa); got != wantAlpha {
		t.Errorf("%s: PremultipliedToArray1() = %v, want %v", space, got, wantAlpha)
	}
	pp := PremultipliedArrayPtr1(&pa)
	if *pp != wantAlpha {
		t.Errorf("%s: *PremultipliedArrayPtr1() = %v, want %v", space, *pp, wantAlpha)
	}
	pp[1] = 9
	if pa.Alpha != 9 {
		t.Errorf("%s: alpha not last in PremultipliedArrayPtr1()", space)
	}
	if pa.Space() != space {
		t.Errorf("%s: PremultipliedAlpha.Space() = %s", space, pa.Space())
	}

	cs := []C{from(want), from(want)}
	flat := Components[T](cs)
	if len(flat) != 2*1 {
		t.Fatalf("%s: len(Components()) = %d, want %d", space, len(flat), 2*1)
	}
	if flat[1] != want[0] {
		t.Errorf("%s: Components()[1] = %v, want %v", space, flat[1], want[0])
	}
	flat[1] = 7
	if *fields(&cs[1])[0] != 7 {
		t.Errorf("%s: write through Components() not visible in record", space)
	}
	back := FromComponents[C](flat)
	if len(back) != 2 || &back[0] != &cs[0] {
		t.Errorf("%s: FromComponents() does not alias the original records", space)
	}
}

// testRecord2 checks the layout and conversion invariants shared by every
// two-component record: array round trips, field order, the memory view,
// equality, the alpha wrappers and the slice views.
func testRecord2[T Component, C Color2[T], PC recordPtr[C, [2]T]](t *testing.T, space Space, from func([2]T) C, fields func(*C) []*T) {
	t.Helper()

	want := [2]T{1, 2}
	c := from(want)
	if got := c.Array(); got != want {
		t.Errorf("%s: Array() = %v, want %v", space, got, want)
	}
	if got := c.Space(); got != space {
		t.Errorf("%s: Space() = %s", space, got)
	}
	if n := space.NumComponents(); n != 2 {
		t.Errorf("%s: NumComponents() = %d, want 2", space, n)
	}
	fs := fields(&c)
	if len(fs) != 2 {
		t.Fatalf("%s: %d fields, want 2", space, len(fs))
	}
	for i, f := range fs {
		if *f != want[i] {
			t.Errorf("%s: field %d = %v, want %v", space, i, *f, want[i])
		}
		if got := c.Component(i); got != want[i] {
			t.Errorf("%s: Component(%d) = %v, want %v", space, i, got, want[i])
		}
	}

	// The array view aliases the fields.
	p := PC(&c).ArrayPtr()
	if *p != want {
		t.Errorf("%s: *ArrayPtr() = %v, want %v", space, *p, want)
	}
	for i, f := range fs {
		p[i] = T(10 + i)
		if *f != T(10+i) {
			t.Errorf("%s: write through ArrayPtr()[%d] not visible in field", space, i)
		}
	}
	PC(&c).SetArray(want)
	if c != from(want) {
		t.Errorf("%s: SetArray(%v) = %v", space, want, c)
	}

	// Changing any one component breaks equality.
	for i := range 2 {
		d := from(want)
		*fields(&d)[i]++
		if d == c {
			t.Errorf("%s: records differing in component %d compare equal", space, i)
		}
	}

	wantAlpha := [3]T{1, 2, 3}
	a := AlphaFromArray2[C, T, PC](wantAlpha)
	if a.Color != c || a.Alpha != 3 {
		t.Errorf("%s: AlphaFromArray2(%v) = %+v", space, wantAlpha, a)
	}
	if got := AlphaToArray2(a); got != wantAlpha {
		t.Errorf("%s: AlphaToArray2() = %v, want %v", space, got, wantAlpha)
	}
	ap := AlphaArrayPtr2(&a)
	if *ap != wantAlpha {
		t.Errorf("%s: *AlphaArrayPtr2() = %v, want %v", space, *ap, wantAlpha)
	}
	ap[2] = 9
	if a.Alpha != 9 {
		t.Errorf("%s: alpha not last in AlphaArrayPtr2()", space)
	}
	if a.Space() != space {
		t.Errorf("%s: Alpha.Space() = %s", space, a.Space())
	}

	pa := PremultipliedFromArray2[C, T, PC](wantAlpha)
	if pa.Color != c || pa.Alpha != 3 {
		t.Errorf("%s: PremultipliedFromArray2(%v) = %+v", space, wantAlpha, pa)
	}
	if got := PremultipliedToArray2(pa); got != wantAlpha {
		t.Errorf("%s: PremultipliedToArray2() = %v, want %v", space, got, wantAlpha)
	}
	pp := PremultipliedArrayPtr2(&pa)
	if *pp != wantAlpha {
		t.Errorf("%s: *PremultipliedArrayPtr2() = %v, want %v", space, *pp, wantAlpha)
	}
	pp[2] = 9
	if pa.Alpha != 9 {
		t.Errorf("%s: alpha not last in PremultipliedArrayPtr2()", space)
	}
	if pa.Space() != space {
		t.Errorf("%s: PremultipliedAlpha.Space() = %s", space, pa.Space())
	}

	cs := []C{from(want), from(want)}
	flat := Components[T](cs)
	if len(flat) != 2*2 {
		t.Fatalf("%s: len(Components()) = %d, want %d", space, len(flat), 2*2)
	}
	if flat[2] != want[0] {
		t.Errorf("%s: Components()[2] = %v, want %v", space, flat[2], want[0])
	}
	flat[2] = 7
	if *fields(&cs[1])[0] != 7 {
		t.Errorf("%s: write through Components() not visible in record", space)
	}
	back := FromComponents[C](flat)
	if len(back) != 2 || &back[0] != &cs[0] {
		t.Errorf("%s: FromComponents() does not alias the original records", space)
	}
}

// testRecord3 checks the layout and conversion invariants shared by every
// three-component record: array round trips, field order, the memory view,
// equality, the alpha wrappers and the slice views.
func testRecord3[T Component, C Color3[T], PC recordPtr[C, [3]T]](t *testing.T, space Space, from func([3]T) C, fields func(*C) []*T) {
	t.Helper()

	want := [3]T{1, 2, 3}
	c := from(want)
	if got := c.Array(); got != want {
		t.Errorf("%s: Array() = %v, want %v", space, got, want)
	}
	if got := c.Space(); got != space {
		t.Errorf("%s: Space() = %s", space, got)
	}
	if n := space.NumComponents(); n != 3 {
		t.Errorf("%s: NumComponents() = %d, want 3", space, n)
	}
	fs := fields(&c)
	if len(fs) != 3 {
		t.Fatalf("%s: %d fields, want 3", space, len(fs))
	}
	for i, f := range fs {
		if *f != want[i] {
			t.Errorf("%s: field %d = %v, want %v", space, i, *f, want[i])
		}
		if got := c.Component(i); got != want[i] {
			t.Errorf("%s: Component(%d) = %v, want %v", space, i, got, want[i])
		}
	}

	// The array view aliases the fields.
	p := PC(&c).ArrayPtr()
	if *p != want {
		t.Errorf("%s: *ArrayPtr() = %v, want %v", space, *p, want)
	}
	for i, f := range fs {
		p[i] = T(10 + i)
		if *f != T(10+i) {
			t.Errorf("%s: write through ArrayPtr()[%d] not visible in field", space, i)
		}
	}
	PC(&c).SetArray(want)
	if c != from(want) {
		t.Errorf("%s: SetArray(%v) = %v", space, want, c)
	}

	// Changing any one component breaks equality.
	for i := range 3 {
		d := from(want)
		*fields(&d)[i]++
		if d == c {
			t.Errorf("%s: records differing in component %d compare equal", space, i)
		}
	}

	wantAlpha := [4]T{1, 2, 3, 4}
	a := AlphaFromArray3[C, T, PC](wantAlpha)
	if a.Color != c || a.Alpha != 4 {
		t.Errorf("%s: AlphaFromArray3(%v) = %+v", space, wantAlpha, a)
	}
	if got := AlphaToArray3(a); got != wantAlpha {
		t.Errorf("%s: AlphaToArray3() = %v, want %v", space, got, wantAlpha)
	}
	ap := AlphaArrayPtr3(&a)
	if *ap != wantAlpha {
		t.Errorf("%s: *AlphaArrayPtr3() = %v, want %v", space, *ap, wantAlpha)
	}
	ap[3] = 9
	if a.Alpha != 9 {
		t.Errorf("%s: alpha not last in AlphaArrayPtr3()", space)
	}
	if a.Space() != space {
		t.Errorf("%s: Alpha.Space() = %s", space, a.Space())
	}

	pa := PremultipliedFromArray3[C, T, PC](wantAlpha)
	if pa.Color != c || pa.Alpha != 4 {
		t.Errorf("%s: PremultipliedFromArray3(%v) = %+v", space, wantAlpha, pa)
	}
	if got := PremultipliedToArray3(pa); got != wantAlpha {
		t.Errorf("%s: PremultipliedToArray3() = %v, want %v", space, got, wantAlpha)
	}
	pp := PremultipliedArrayPtr3(&pa)
	if *pp != wantAlpha {
		t.Errorf("%s: *PremultipliedArrayPtr3() = %v, want %v", space, *pp, wantAlpha)
	}
	pp[3] = 9
	if pa.Alpha != 9 {
		t.Errorf("%s: alpha not last in PremultipliedArrayPtr3()", space)
	}
	if pa.Space() != space {
		t.Errorf("%s: PremultipliedAlpha.Space() = %s", space, pa.Space())
	}

	cs := []C{from(want), from(want)}
	flat := Components[T](cs)
	if len(flat) != 2*3 {
		t.Fatalf("%s: len(Components()) = %d, want %d", space, len(flat), 2*3)
	}
	if flat[3] != want[0] {
		t.Errorf("%s: Components()[3] = %v, want %v", space, flat[3], want[0])
	}
	flat[3] = 7
	if *fields(&cs[1])[0] != 7 {
		t.Errorf("%s: write through Components() not visible in record", space)
	}
	back := FromComponents[C](flat)
	if len(back) != 2 || &back[0] != &cs[0] {
		t.Errorf("%s: FromComponents() does not alias the original records", space)
	}
}
