package core

import (
	"reflect"
	"testing"
)

func TestCallAllRefsNotifiesEveryTarget(t *testing.T) {
	var order []string
	slot := &RefSlot[string]{}
	var nilSlot *RefSlot[string]
	var nilFunc RefFunc[string]

	set := CallAllRefs[string](
		RefFunc[string](func(v string) { order = append(order, "fn:"+v) }),
		nil,
		nilSlot,
		nilFunc,
		slot,
		RefFunc[string](func(v string) { order = append(order, "fn2:"+v) }),
	)
	set("node")

	if !reflect.DeepEqual(order, []string{"fn:node", "fn2:node"}) {
		t.Fatalf("order = %v", order)
	}
	if slot.Current != "node" {
		t.Fatalf("slot = %q", slot.Current)
	}
}

func TestSetRefIgnoresNil(t *testing.T) {
	SetRef[int](nil, 1)
	slot := &RefSlot[int]{}
	SetRef[int](slot, 7)
	if slot.Current != 7 {
		t.Fatalf("slot = %d", slot.Current)
	}
}
