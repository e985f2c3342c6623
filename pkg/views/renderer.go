// Package views 页面模板
// 每个页面都和layouts下的布局一起解析成独立的模板集合，
// 页面里用{{define}}覆盖布局中{{block}}的默认内容，实现模板继承
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templatesFS embed.FS

// FS 内置的模板文件，根目录为templates
func FS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer 实现gin的render.HTMLRender
type Renderer struct {
	fs        fs.FS
	layoutDir string
	funcs     template.FuncMap

	mu        sync.RWMutex
	templates map[string]*template.Template
}

// NewRenderer 解析fsys根目录下的所有页面
func NewRenderer(fsys fs.FS, funcs template.FuncMap) (*Renderer, error) {
	r := &Renderer{
		fs:        fsys,
		layoutDir: "layouts",
		funcs:     funcs,
		templates: make(map[string]*template.Template),
	}

	pages, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		if _, err := r.parse(page); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// parse 先解析布局再解析页面，页面中的define会覆盖布局中的同名block
func (r *Renderer) parse(name string) (*template.Template, error) {
	tmpl := template.New(name).Funcs(r.funcs)

	layouts, err := fs.Glob(r.fs, path.Join(r.layoutDir, "*.html"))
	if err != nil {
		return nil, err
	}
	if len(layouts) > 0 {
		if tmpl, err = tmpl.ParseFS(r.fs, layouts...); err != nil {
			return nil, fmt.Errorf("解析布局失败: %w", err)
		}
	}
	if tmpl, err = tmpl.ParseFS(r.fs, name); err != nil {
		return nil, fmt.Errorf("解析模板 %s 失败: %w", name, err)
	}

	r.mu.Lock()
	r.templates[name] = tmpl
	r.mu.Unlock()
	return tmpl, nil
}

// Lookup 获取页面对应的模板集合
func (r *Renderer) Lookup(name string) (*template.Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tmpl, ok := r.templates[name]
	return tmpl, ok
}

// Instance 实现render.HTMLRender
// 未知页面会在执行时返回错误
func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.Lookup(name)
	if !ok {
		tmpl = template.New(name)
	}
	return render.HTML{
		Template: tmpl,
		Name:     name,
		Data:     data,
	}
}
