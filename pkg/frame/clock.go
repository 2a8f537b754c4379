// Package frame provides a display-frame callback queue in the style of
// requestAnimationFrame.
//
// Callbacks registered with Request run exactly once, on the next Pump.
// Callbacks registered while a pump is in progress are deferred to the
// following pump, so a self-rescheduling loop runs once per frame.
//
// Clock is not safe for concurrent use; the game loop owns it.
package frame

// Callback 帧回调，dt 为距上一帧的秒数
type Callback func(dt float64)

// RequestID 标识一次帧请求，用于 Cancel
type RequestID uint64

type request struct {
	id RequestID
	cb Callback
}

// Clock is a manually pumped frame scheduler.
type Clock struct {
	nextID  RequestID
	pending []request
	frames  uint64

	// 当前 Pump 正在执行的批次中被取消的请求
	running   bool
	cancelled map[RequestID]bool
}

// NewClock 创建帧时钟
func NewClock() *Clock {
	return &Clock{cancelled: make(map[RequestID]bool)}
}

// Request queues cb for the next frame. A nil callback is ignored and yields
// the zero RequestID.
func (c *Clock) Request(cb Callback) RequestID {
	if cb == nil {
		return 0
	}
	c.nextID++
	c.pending = append(c.pending, request{id: c.nextID, cb: cb})
	return c.nextID
}

// Cancel removes a pending request. Cancelling an unknown or already-run
// request is a no-op.
func (c *Clock) Cancel(id RequestID) {
	for i, r := range c.pending {
		if r.id == id {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
	if c.running {
		if c.cancelled == nil {
			c.cancelled = make(map[RequestID]bool)
		}
		c.cancelled[id] = true
	}
}

// Pending 返回等待中的请求数
func (c *Clock) Pending() int {
	return len(c.pending)
}

// Frames 返回已泵送的帧数
func (c *Clock) Frames() uint64 {
	return c.frames
}

// Pump runs every callback queued before this call and returns how many ran.
// A callback cancelled by an earlier callback in the same pump does not run.
func (c *Clock) Pump(dt float64) int {
	c.frames++
	batch := c.pending
	c.pending = nil

	c.running = true
	defer func() {
		c.running = false
		clear(c.cancelled)
	}()

	ran := 0
	for _, r := range batch {
		if c.cancelled[r.id] {
			continue
		}
		r.cb(dt)
		ran++
	}
	return ran
}
