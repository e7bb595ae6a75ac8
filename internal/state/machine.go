package state

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
)

// 预订写入状态常量
const (
	StatusPending   = "pending"
	StatusCommitted = "committed"
	StatusFailed    = "failed"
)

// 事件常量
const (
	EventCommit = "commit"
	EventFail   = "fail"
)

// Booking 预订写入状态机
// 唯一的迁移是 pending -> committed 或 pending -> failed，
// 终态之后不允许再迁移
type Booking struct {
	fsm *fsm.FSM
}

// NewBooking 创建状态机，初始状态为 pending
func NewBooking() *Booking {
	return &Booking{
		fsm: fsm.NewFSM(
			StatusPending,
			fsm.Events{
				{Name: EventCommit, Src: []string{StatusPending}, Dst: StatusCommitted},
				{Name: EventFail, Src: []string{StatusPending}, Dst: StatusFailed},
			},
			fsm.Callbacks{},
		),
	}
}

// Current 获取当前状态
func (b *Booking) Current() string {
	return b.fsm.Current()
}

// Can 检查事件是否允许
func (b *Booking) Can(event string) bool {
	return b.fsm.Can(event)
}

// Commit 标记写入成功
func (b *Booking) Commit(ctx context.Context) error {
	if err := b.fsm.Event(ctx, EventCommit); err != nil {
		return fmt.Errorf("commit booking: %w", err)
	}
	return nil
}

// Fail 标记写入失败
func (b *Booking) Fail(ctx context.Context) error {
	if err := b.fsm.Event(ctx, EventFail); err != nil {
		return fmt.Errorf("fail booking: %w", err)
	}
	return nil
}
