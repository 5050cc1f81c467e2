// Package web holds the server-rendered pages of the public site and the
// admin shell.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

//go:embed templates/*.html static/*
var files embed.FS

var funcs = template.FuncMap{
	"year": func() int { return time.Now().Year() },
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("January 2006")
	},
	"title": title,
}

func title(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Templates parses every embedded page. Pages are addressed by their
// define name, e.g. "home".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// Static serves the stylesheets under /static.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
