package components

// TransformComponent 存储节点相对于其锚点的 2D 变换与透明度
//
// 由滚动驱动的系统每次滚动时整体覆盖写入，渲染系统只读。
type TransformComponent struct {
	TranslateX float64
	TranslateY float64
	Rotation   float64 // 度
	Scale      float64
	Opacity    float64
}

// Identity 返回单位变换（完全不透明）
func Identity() TransformComponent {
	return TransformComponent{Scale: 1, Opacity: 1}
}
