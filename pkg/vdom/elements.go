package vdom

func Div(opts ...any) *VNode { return El("div", opts...) }
func Span(opts ...any) *VNode { return El("span", opts...) }
func P(opts ...any) *VNode { return El("p", opts...) }
func H1(opts ...any) *VNode { return El("h1", opts...) }
func H2(opts ...any) *VNode { return El("h2", opts...) }
func H3(opts ...any) *VNode { return El("h3", opts...) }
func Main(opts ...any) *VNode { return El("main", opts...) }
func Header(opts ...any) *VNode { return El("header", opts...) }
func Section(opts ...any) *VNode { return El("section", opts...) }
func Button(opts ...any) *VNode { return El("button", opts...) }
func Input(opts ...any) *VNode { return El("input", opts...) }
func Label(opts ...any) *VNode { return El("label", opts...) }
func A(opts ...any) *VNode { return El("a", opts...) }
func Ul(opts ...any) *VNode { return El("ul", opts...) }
func Li(opts ...any) *VNode { return El("li", opts...) }
