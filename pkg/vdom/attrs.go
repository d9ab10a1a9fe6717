package vdom

import "strconv"

func Class(c string) Attr { return Attr{Key: "class", Value: c} }
func ID(id string) Attr { return Attr{Key: "id", Value: id} }
func For(id string) Attr { return Attr{Key: "for", Value: id} }
func Type(t string) Attr { return Attr{Key: "type", Value: t} }
func Name(n string) Attr { return Attr{Key: "name", Value: n} }
func Placeholder(s string) Attr { return Attr{Key: "placeholder", Value: s} }
func Value(s string) Attr { return Attr{Key: "value", Value: s} }
func Href(s string) Attr { return Attr{Key: "href", Value: s} }
func Rel(s string) Attr { return Attr{Key: "rel", Value: s} }
func Src(s string) Attr { return Attr{Key: "src", Value: s} }
func Title(s string) Attr { return Attr{Key: "title", Value: s} }
func Role(s string) Attr { return Attr{Key: "role", Value: s} }
func Disabled(b bool) Attr { return Attr{Key: "disabled", Value: b} }
func TabIndex(i int) Attr { return Attr{Key: "tabindex", Value: strconv.Itoa(i)} }
func Data(key, value string) Attr { return Attr{Key: "data-" + key, Value: value} }
func Aria(key, value string) Attr { return Attr{Key: "aria-" + key, Value: value} }
func AttrKV(key string, v any) Attr { return Attr{Key: key, Value: v} }
