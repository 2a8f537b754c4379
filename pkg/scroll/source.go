package scroll

import (
	"github.com/gonewx/magnumopus/internal/logger"
	"github.com/gonewx/magnumopus/pkg/utils"
	"go.uber.org/zap"
)

// BoundsFunc returns the live bounding rect of a tracked element.
// ok=false means the element is not mounted; the tracker is skipped.
type BoundsFunc func() (r Rect, ok bool)

// Handler receives the freshly computed progress. It runs synchronously inside
// the dispatch and must be cheap.
type Handler func(progress float64)

type tracker struct {
	id      int
	name    string
	bounds  BoundsFunc
	handler Handler
	last    float64
}

// Source dispatches scroll progress to registered trackers.
type Source struct {
	viewport utils.Viewport
	trackers []*tracker
	nextID   int
}

// NewSource 创建滚动进度源
func NewSource(viewport utils.Viewport) *Source {
	return &Source{viewport: viewport}
}

// Viewport 返回当前视口
func (s *Source) Viewport() utils.Viewport {
	return s.viewport
}

// Track 注册一个跟踪元素，返回注销函数（区块卸载时调用）
func (s *Source) Track(name string, bounds BoundsFunc, handler Handler) (remove func()) {
	s.nextID++
	t := &tracker{id: s.nextID, name: name, bounds: bounds, handler: handler}
	s.trackers = append(s.trackers, t)
	logger.Debug("[Scroll] tracker registered", zap.String("name", name), zap.Int("id", t.id))

	return func() {
		for i, cur := range s.trackers {
			if cur.id == t.id {
				s.trackers = append(s.trackers[:i], s.trackers[i+1:]...)
				logger.Debug("[Scroll] tracker removed", zap.String("name", name))
				return
			}
		}
	}
}

// Len 返回当前注册的跟踪器数量
func (s *Source) Len() int {
	return len(s.trackers)
}

// Dispatch 模拟一次 scroll 事件：对每个跟踪器重新计算进度并同步回调
func (s *Source) Dispatch() {
	for _, t := range s.trackers {
		if t.bounds == nil || t.handler == nil {
			continue
		}
		r, ok := t.bounds()
		if !ok {
			continue
		}
		t.last = RectProgress(r, s.viewport.Height)
		t.handler(t.last)
	}
}

// Resize 更新视口并重新派发
func (s *Source) Resize(viewport utils.Viewport) {
	s.viewport = viewport
	s.Dispatch()
}

// LastProgress 返回指定跟踪器最近一次派发的进度
func (s *Source) LastProgress(name string) (float64, bool) {
	for _, t := range s.trackers {
		if t.name == name {
			return t.last, true
		}
	}
	return 0, false
}
