package alchemy

import (
	"errors"

	"go.uber.org/zap"

	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/frame"
)

var (
	// ErrEngineStopped is returned by Start after Close.
	ErrEngineStopped = errors.New("alchemy: engine stopped")
	// ErrLoopRunning is returned by Start while a loop is already scheduled.
	ErrLoopRunning = errors.New("alchemy: loop already running")
)

// Scheduler queues one-shot frame callbacks. *frame.Clock implements it.
type Scheduler interface {
	Request(cb frame.Callback) frame.RequestID
	Cancel(id frame.RequestID)
}

// CancelFunc stops a running loop. Calling it more than once is a no-op.
type CancelFunc func()

type loop struct {
	engine  *Engine
	sched   Scheduler
	onFrame func(*Engine)
	pending frame.RequestID
	done    bool
}

func (l *loop) run(float64) {
	if l.done {
		return
	}
	// 先预约下一帧再执行本帧
	l.pending = l.sched.Request(l.run)
	l.engine.Tick()
	if l.onFrame != nil {
		l.onFrame(l.engine)
	}
}

func (l *loop) cancel() {
	if l.done {
		return
	}
	l.done = true
	l.sched.Cancel(l.pending)
	if l.engine.loop == l {
		l.engine.loop = nil
	}
	logger.Debug("[Alchemy] loop cancelled", zap.String("id", l.engine.id.String()))
}

// Start schedules a self-rescheduling loop on s: every frame it ticks the
// engine and then calls onFrame (typically a render). The returned
// CancelFunc removes the pending frame so no further ticks run.
func (e *Engine) Start(s Scheduler, onFrame func(*Engine)) (CancelFunc, error) {
	if e.stopped {
		return nil, ErrEngineStopped
	}
	if e.loop != nil {
		return nil, ErrLoopRunning
	}
	l := &loop{engine: e, sched: s, onFrame: onFrame}
	e.loop = l
	l.pending = s.Request(l.run)

	logger.Debug("[Alchemy] loop started", zap.String("id", e.id.String()))
	return l.cancel, nil
}

// Running 是否有正在运行的帧循环
func (e *Engine) Running() bool {
	return e.loop != nil
}
