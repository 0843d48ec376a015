package tools

import "slices"

// FunctionSpec 工具函数描述
type FunctionSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Spec 一个工具的 schema，对应 OpenAI tools 数组中的一项
type Spec struct {
	Type     string       `json:"type"` // "function"
	Function FunctionSpec `json:"function"`
}

// NewSpec 创建 function 类型的工具描述
func NewSpec(name, description string, parameters map[string]any) Spec {
	return Spec{
		Type: "function",
		Function: FunctionSpec{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// Name 返回工具名
func (s Spec) Name() string {
	return s.Function.Name
}

// ToolRegistry 工具注册表，按注册顺序保存，保证 manifest 输出稳定
type ToolRegistry struct {
	order []string
	tools map[string]Spec
}

// NewToolRegistry 创建工具注册表
func NewToolRegistry(specs ...Spec) *ToolRegistry {
	r := &ToolRegistry{
		tools: make(map[string]Spec),
	}
	for _, s := range specs {
		r.Register(s)
	}
	return r
}

// Register 注册工具，同名工具覆盖旧定义但保留原位置
func (r *ToolRegistry) Register(spec Spec) {
	name := spec.Name()
	if _, ok := r.tools[name]; !ok {
		r.order = append(r.order, name)
	}
	r.tools[name] = spec
}

// Get 获取工具
func (r *ToolRegistry) Get(name string) (Spec, bool) {
	spec, ok := r.tools[name]
	return spec, ok
}

// List 按注册顺序列出所有工具
func (r *ToolRegistry) List() []Spec {
	specs := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.tools[name])
	}
	return specs
}

// Names 列出所有工具名（即 strict 模式的 allow-list）
func (r *ToolRegistry) Names() []string {
	return slices.Clone(r.order)
}

// Parameters 返回 name -> 参数 JSON schema 的映射
func (r *ToolRegistry) Parameters() map[string]map[string]any {
	out := make(map[string]map[string]any, len(r.tools))
	for name, spec := range r.tools {
		if spec.Function.Parameters != nil {
			out[name] = spec.Function.Parameters
		}
	}
	return out
}
