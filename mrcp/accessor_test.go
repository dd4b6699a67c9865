package mrcp_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/gomrcp/internal/testutil/mrcpmock"
	"github.com/ghettovoice/gomrcp/mrcp"
)

func TestHeaderAccessor_Allocate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	alloc := mrcpmock.NewMockAllocator(ctrl)

	pool := mrcp.NewPool()
	acc := &mrcp.HeaderAccessor{Allocator: alloc}
	block := &mrcp.GenericHeader{ContentLength: 7}
	alloc.EXPECT().Allocate(acc, pool).Return(block).Times(1)

	if acc.IsAllocated() {
		t.Error("acc.IsAllocated() before Allocate = true, want false")
	}
	for range 3 {
		if got := acc.Allocate(pool); got != block {
			t.Fatalf("acc.Allocate() = %v, want %v", got, block)
		}
	}
	if !acc.IsAllocated() {
		t.Error("acc.IsAllocated() after Allocate = false, want true")
	}

	pool.Destroy()
	if acc.Data != nil {
		t.Errorf("acc.Data after pool destroy = %v, want nil", acc.Data)
	}
	if got := acc.Allocate(pool); got != nil {
		t.Errorf("acc.Allocate() on destroyed pool = %v, want nil", got)
	}
}

func TestHeaderAccessor_Allocate_NilResult(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	alloc := mrcpmock.NewMockAllocator(ctrl)
	alloc.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	acc := &mrcp.HeaderAccessor{Allocator: alloc}
	for range 2 {
		if got := acc.Allocate(nil); got != nil {
			t.Errorf("acc.Allocate() = %v, want nil", got)
		}
	}
}

func TestHeaderAccessor_Allocate_TypedNilResult(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	alloc := mrcpmock.NewMockAllocator(ctrl)
	alloc.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return((*mrcp.RecogHeader)(nil)).Times(2)

	acc := &mrcp.HeaderAccessor{Allocator: alloc}
	for range 2 {
		if got := acc.Allocate(mrcp.NewPool()); got != nil {
			t.Errorf("acc.Allocate() = %v, want nil", got)
		}
		if acc.IsAllocated() {
			t.Error("acc.IsAllocated() = true, want false")
		}
	}
}

func TestHeaderAccessor_Allocate_NoAllocator(t *testing.T) {
	t.Parallel()

	acc := &mrcp.HeaderAccessor{}
	if got := acc.Allocate(mrcp.NewPool()); got != nil {
		t.Errorf("acc.Allocate() without allocator = %v, want nil", got)
	}

	var nilAcc *mrcp.HeaderAccessor
	if got := nilAcc.Allocate(mrcp.NewPool()); got != nil {
		t.Errorf("nil accessor Allocate() = %v, want nil", got)
	}

	existing := &mrcp.RecogHeader{}
	acc = &mrcp.HeaderAccessor{Data: existing}
	if got := acc.Allocate(nil); got != existing {
		t.Errorf("acc.Allocate() with data = %v, want %v", got, existing)
	}
}

func TestBlockAllocator(t *testing.T) {
	t.Parallel()

	alloc := mrcp.BlockAllocator(func(hdr *mrcp.RecogHeader) { hdr.StartInputTimers = true })
	hdr, ok := alloc.Allocate(nil, nil).(*mrcp.RecogHeader)
	if !ok {
		t.Fatalf("alloc.Allocate() = %T, want *mrcp.RecogHeader", hdr)
	}
	if !hdr.StartInputTimers {
		t.Error("init func was not applied")
	}
	if hdr2 := alloc.Allocate(nil, nil); hdr2 == any(hdr) {
		t.Error("alloc.Allocate() returned the same block twice")
	}
}
