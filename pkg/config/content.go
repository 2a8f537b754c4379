package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ContentPath 页面文案在数据文件系统中的路径
const ContentPath = "data/content.yaml"

// Content 页面全部静态文案
//
// 配置文件位置: data/content.yaml
type Content struct {
	Hero          HeroContent          `yaml:"hero"`
	Geometry      GeometryContent      `yaml:"geometry"`
	Symbols       SymbolsContent       `yaml:"symbols"`
	Archive       ArchiveContent       `yaml:"archive"`
	Transmutation TransmutationContent `yaml:"transmutation"`
	Footer        FooterContent        `yaml:"footer"`
	Nav           NavContent           `yaml:"nav"`
}

// HeroContent 首屏
type HeroContent struct {
	Eyebrow     string `yaml:"eyebrow"`
	Title       string `yaml:"title"`
	Quote       string `yaml:"quote"`
	QuoteSource string `yaml:"quote_source"`
	Action      string `yaml:"action"`
}

// GeometryContent 几何重组区块
type GeometryContent struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Caption  string `yaml:"caption"`
	Hint     string `yaml:"hint"`
}

// SymbolsContent 螺旋符号区块
type SymbolsContent struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Hint     string   `yaml:"hint"`
	Items    []Symbol `yaml:"items"`
}

// Symbol 一张符号卡片
type Symbol struct {
	Name        string `yaml:"name"`
	Quote       string `yaml:"quote"`
	Source      string `yaml:"source"`
	QuoteAlign  string `yaml:"quote_align"` // left | right
	Orb         string `yaml:"orb"`
	Description string `yaml:"description"`
}

// ArchiveContent 画廊区块
type ArchiveContent struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Items    []ArchiveItem `yaml:"items"`
	Action   string        `yaml:"action"`
}

// ArchiveItem 画廊中的一幅
type ArchiveItem struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Video    bool   `yaml:"video"` // 动态画面，右上角显示播放标记
}

// TransmutationContent 粒子嬗变区块
type TransmutationContent struct {
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	LeadLabel string `yaml:"lead_label"`
	GoldLabel string `yaml:"gold_label"`
}

// FooterContent 页脚
type FooterContent struct {
	Brand  string   `yaml:"brand"`
	Quote  string   `yaml:"quote"`
	Glyphs []string `yaml:"glyphs"`
}

// NavContent 左上角标题与右上角的链式导航
type NavContent struct {
	Brand string    `yaml:"brand"`
	Items []NavItem `yaml:"items"`
}

// NavItem 导航节点，点击后滚动到 Section
type NavItem struct {
	Label   string `yaml:"label"`
	Section string `yaml:"section"`
}

// ParseContent 解析 YAML 文案并校验
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &c, nil
}

// Validate 检查必需字段
func (c *Content) Validate() error {
	var errs []error
	if c.Geometry.Title == "" {
		errs = append(errs, errors.New("geometry.title is required"))
	}
	if len(c.Symbols.Items) == 0 {
		errs = append(errs, errors.New("symbols.items must not be empty"))
	}
	for i, s := range c.Symbols.Items {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("symbols.items[%d].name is required", i))
		}
		switch s.QuoteAlign {
		case "", "left", "right":
		default:
			errs = append(errs, fmt.Errorf("symbols.items[%d].quote_align must be left or right, got %q", i, s.QuoteAlign))
		}
	}
	for i, n := range c.Nav.Items {
		if n.Section == "" {
			errs = append(errs, fmt.Errorf("nav.items[%d].section is required", i))
		}
	}
	return errors.Join(errs...)
}
