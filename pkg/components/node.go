package components

// Layer 标识页面中的一个可视层
type Layer int

const (
	LayerNone Layer = iota
	// geometry 区块
	LayerGeometryTitle
	LayerGeometryFigure
	LayerGeometryRing
	LayerGeometryPortal
	LayerCinematic
	LayerCinematicCaption
	LayerGeometryHint
	// symbols 区块
	LayerHelixGuide
	LayerHelixCards
	LayerHelixTitle
	LayerHelixHint
	// 背景
	LayerSmoke
)

var layerNames = map[Layer]string{
	LayerNone:             "none",
	LayerGeometryTitle:    "geometry-title",
	LayerGeometryFigure:   "geometry-figure",
	LayerGeometryRing:     "geometry-ring",
	LayerGeometryPortal:   "geometry-portal",
	LayerCinematic:        "cinematic",
	LayerCinematicCaption: "cinematic-caption",
	LayerGeometryHint:     "geometry-hint",
	LayerHelixGuide:       "helix-guide",
	LayerHelixCards:       "helix-cards",
	LayerHelixTitle:       "helix-title",
	LayerHelixHint:        "helix-hint",
	LayerSmoke:            "smoke",
}

func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return "unknown"
}

// NodeComponent 标记一个挂载在某区块中的可视节点
type NodeComponent struct {
	Section string
	Layer   Layer
}

// LayerComponent 整层的可视状态（透明度、裁剪、缩放）
type LayerComponent struct {
	Opacity float64
	Scale   float64
	// ClipRadius 圆形裁剪半径（百分比），负数表示不裁剪
	ClipRadius float64
}
