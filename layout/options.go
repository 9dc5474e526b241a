package layout

// BuildOptions 配置布局阶段所需的参数与依赖，例如排版后端。
type BuildOptions struct {
	Geometry Geometry
	Config   Config
	// Typesetter 提供宽度测量；布局本身不依赖任何字体引擎。
	Typesetter Typesetter
	// TitleTemplate 为页眉标题模板，空串时使用 DefaultTitleTemplate。
	// 可用占位符：${name}、${page}、${pages}。
	TitleTemplate string
	Meta          DocumentMeta
}

// Typesetter 负责把字号绑定到具体字体并返回宽度测量函数。
// 绑定只发生一次，随后的测量是纯函数。
type Typesetter interface {
	Face(fontSize float64) (MeasureFunc, error)
}
