package topics

// Renderer turns the raw content of a topic into what is printed. ext is
// the topic file extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(content string, ext string) string

// Render calls f
func (f RendererFunc) Render(content string, ext string) string { return f(content, ext) }

// PlainRenderer prints topics unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}
