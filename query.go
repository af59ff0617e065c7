package loom

import (
	"github.com/emberworks/loom/search"
	"github.com/emberworks/loom/search/filter"
	"github.com/emberworks/loom/types"
)

// Query1 visits every entity holding an A component, passing the entity and a
// copy of the component value. Return false from fn to stop early. Iteration
// is driven by the A store, so the cost scales with the number of A holders,
// not the total entity population. Mutations made through SetComponent do not
// take effect for the iteration in progress.
func Query1[A types.Component](w World, fn func(e types.Entity, a A) bool) {
	mdA, err := resolveComponent[A](w, false)
	if err != nil {
		return
	}
	ids := []types.ComponentID{mdA.ID()}
	search.New(w.stateReader(), filter.Contains(ids...), ids).Each(func(e types.Entity) bool {
		a, ok := componentValue[A](w, mdA, e)
		if !ok {
			return true
		}
		return fn(e, a)
	})
}

// Query2 visits every entity holding both an A and a B component. The
// smallest of the two stores drives the iteration.
func Query2[A, B types.Component](w World, fn func(e types.Entity, a A, b B) bool) {
	mdA, errA := resolveComponent[A](w, false)
	mdB, errB := resolveComponent[B](w, false)
	if errA != nil || errB != nil {
		return
	}
	ids := []types.ComponentID{mdA.ID(), mdB.ID()}
	search.New(w.stateReader(), filter.Contains(ids...), ids).Each(func(e types.Entity) bool {
		a, okA := componentValue[A](w, mdA, e)
		b, okB := componentValue[B](w, mdB, e)
		if !okA || !okB {
			return true
		}
		return fn(e, a, b)
	})
}

// Query3 visits every entity holding A, B, and C components.
func Query3[A, B, C types.Component](w World, fn func(e types.Entity, a A, b B, c C) bool) {
	mdA, errA := resolveComponent[A](w, false)
	mdB, errB := resolveComponent[B](w, false)
	mdC, errC := resolveComponent[C](w, false)
	if errA != nil || errB != nil || errC != nil {
		return
	}
	ids := []types.ComponentID{mdA.ID(), mdB.ID(), mdC.ID()}
	search.New(w.stateReader(), filter.Contains(ids...), ids).Each(func(e types.Entity) bool {
		a, okA := componentValue[A](w, mdA, e)
		b, okB := componentValue[B](w, mdB, e)
		c, okC := componentValue[C](w, mdC, e)
		if !okA || !okB || !okC {
			return true
		}
		return fn(e, a, b, c)
	})
}

// Query4 visits every entity holding A, B, C, and D components.
func Query4[A, B, C, D types.Component](
	w World, fn func(e types.Entity, a A, b B, c C, d D) bool,
) {
	mdA, errA := resolveComponent[A](w, false)
	mdB, errB := resolveComponent[B](w, false)
	mdC, errC := resolveComponent[C](w, false)
	mdD, errD := resolveComponent[D](w, false)
	if errA != nil || errB != nil || errC != nil || errD != nil {
		return
	}
	ids := []types.ComponentID{mdA.ID(), mdB.ID(), mdC.ID(), mdD.ID()}
	search.New(w.stateReader(), filter.Contains(ids...), ids).Each(func(e types.Entity) bool {
		a, okA := componentValue[A](w, mdA, e)
		b, okB := componentValue[B](w, mdB, e)
		c, okC := componentValue[C](w, mdC, e)
		d, okD := componentValue[D](w, mdD, e)
		if !okA || !okB || !okC || !okD {
			return true
		}
		return fn(e, a, b, c, d)
	})
}

// Query5 visits every entity holding A, B, C, D, and E components.
func Query5[A, B, C, D, E types.Component](
	w World, fn func(e types.Entity, a A, b B, c C, d D, v E) bool,
) {
	mdA, errA := resolveComponent[A](w, false)
	mdB, errB := resolveComponent[B](w, false)
	mdC, errC := resolveComponent[C](w, false)
	mdD, errD := resolveComponent[D](w, false)
	mdE, errE := resolveComponent[E](w, false)
	if errA != nil || errB != nil || errC != nil || errD != nil || errE != nil {
		return
	}
	ids := []types.ComponentID{mdA.ID(), mdB.ID(), mdC.ID(), mdD.ID(), mdE.ID()}
	search.New(w.stateReader(), filter.Contains(ids...), ids).Each(func(e types.Entity) bool {
		a, okA := componentValue[A](w, mdA, e)
		b, okB := componentValue[B](w, mdB, e)
		c, okC := componentValue[C](w, mdC, e)
		d, okD := componentValue[D](w, mdD, e)
		v, okE := componentValue[E](w, mdE, e)
		if !okA || !okB || !okC || !okD || !okE {
			return true
		}
		return fn(e, a, b, c, d, v)
	})
}
