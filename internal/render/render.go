// Package render writes sampled gradients through text/template files.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/jsvensson/h2si"
	"github.com/jsvensson/h2si/internal/gradient"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("h2si.render")

// DefaultPrecision is the number of decimals used by the fixed and
// components template functions.
const DefaultPrecision = 6

// Engine renders every .tmpl file in TemplatesDir once per gradient.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Only         []string // if non-empty, only render these gradient names
	Precision    int      // decimals for float output; DefaultPrecision if zero
}

// Run samples each gradient and writes OutputDir/<gradient>.<template>
// for every template. It returns the written paths in order.
func (e *Engine) Run(gradients []gradient.Gradient) ([]string, error) {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	funcs := e.funcMap()

	var written []string
	for _, g := range gradients {
		if !e.shouldRender(g.Name) {
			log.Debug("skipping gradient", "gradient", g.Name)
			continue
		}

		samples, err := g.Sample(g.Steps)
		if err != nil {
			return written, err
		}
		data := templateData{Name: g.Name, Steps: g.Steps, Stops: g.Stops, Samples: samples}

		for _, tmplPath := range matches {
			baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")
			outPath := filepath.Join(e.OutputDir, g.Name+"."+baseName)

			if err := renderTemplate(tmplPath, outPath, funcs, data); err != nil {
				return written, err
			}
			log.Info("rendered", "gradient", g.Name, "template", baseName, "path", outPath)
			written = append(written, outPath)
		}
	}

	return written, nil
}

func (e *Engine) shouldRender(name string) bool {
	if len(e.Only) == 0 {
		return true
	}
	return slices.Contains(e.Only, name)
}

func renderTemplate(tmplPath, outPath string, funcs template.FuncMap, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(funcs).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Name    string
	Steps   int
	Stops   []gradient.Stop
	Samples []gradient.Sample
}

func (e *Engine) funcMap() template.FuncMap {
	prec := e.Precision
	if prec <= 0 {
		prec = DefaultPrecision
	}
	fixed := func(f float64) string {
		return strconv.FormatFloat(f+0, 'f', prec, 64)
	}

	return template.FuncMap{
		"hex": func(c colorful.Color) string {
			return c.Clamped().Hex()
		},
		"rgb": func(c colorful.Color) string {
			r, g, b := c.Clamped().RGB255()
			return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
		},
		"hsi": func(c h2si.HSI) string {
			return fmt.Sprintf("hsi(%s, %s, %s)", fixed(c.H), fixed(c.S), fixed(c.I))
		},
		"components": func(v h2si.Components) string {
			parts := make([]string, len(v))
			for k, f := range v {
				parts[k] = fixed(f)
			}
			return strings.Join(parts, ", ")
		},
		"fixed": fixed,
	}
}
