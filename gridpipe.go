// CLAUDE:SUMMARY Engine façade: normalize, classify, repair, parse, fall back; never fails on any input.
// CLAUDE:EXPORTS Engine, New, SupportedFormats

// Package gridpipe reconstructs table structure from extracted document
// content. A block of text is classified as HTML, Markdown, delimited text,
// or not tabular, then parsed by the matching strategy into one canonical
// grid with spans, styling attributes, and a confidence indicator. Malformed
// table markup is repaired before parsing, and markup without a parsable
// table degrades to regex extraction, then to preformatted text: recognition
// never fails.
//
// Usage:
//
//	eng := gridpipe.New(gridpipe.Config{})
//	res := eng.Recognize(block, nil)
//	if res.Grid != nil {
//		visual := gridpipe.Render(res.Grid, nil)
//		_ = visual
//	}
package gridpipe

import (
	"log/slog"
	"strings"
)

// Engine recognizes table structure in content blocks.
type Engine struct {
	cfg            Config
	logger         *slog.Logger
	headerKeywords map[string]bool
	mdConverter    *markdownConverter
}

// New builds an engine. The zero Config works: defaults are applied here.
func New(cfg Config) *Engine {
	cfg.defaults()
	keywords := make(map[string]bool, len(defaultHeaderKeywords)+len(cfg.HeaderKeywords))
	for _, kw := range defaultHeaderKeywords {
		keywords[kw] = true
	}
	for _, kw := range cfg.HeaderKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords[kw] = true
		}
	}
	return &Engine{
		cfg:            cfg,
		logger:         cfg.Logger,
		headerKeywords: keywords,
		mdConverter:    newMarkdownConverter(),
	}
}

// SupportedFormats lists every classification Recognize can produce.
func SupportedFormats() []Format {
	return []Format{FormatHTMLTable, FormatMarkdownTable, FormatDelimitedText, FormatNotTabular}
}

// Recognize runs the full pipeline on one content block. It never fails:
// blocks nothing can parse come back as preformatted text with a low
// confidence indicator, not as an error.
func (e *Engine) Recognize(raw string, meta *BlockMeta) *Result {
	if len(raw) > e.cfg.MaxInputSize {
		e.logger.Warn("content block truncated",
			"size", len(raw),
			"max", e.cfg.MaxInputSize)
		raw = raw[:e.cfg.MaxInputSize]
	}

	normalized := Normalize(raw)
	format := Classify(raw, normalized)
	e.logger.Debug("content block classified", "format", format)

	res := &Result{Format: format}
	switch format {
	case FormatHTMLTable:
		repaired := RepairHTML(normalized)
		res.Repaired = repaired != normalized
		if res.Repaired {
			e.logger.Debug("table markup repaired",
				"grown_by", len(repaired)-len(normalized))
		}
		res.Grid = htmlGrid(e.cfg.Markup, sanitizeTableHTML(repaired), e.headerKeywords)
		if res.Grid == nil {
			res.Grid = fallbackGrid(stripTags(repaired))
			res.UsedFallback = res.Grid != nil
			if res.UsedFallback {
				e.logger.Debug("regex fallback recovered a grid",
					"rows", res.Grid.RowCount())
			}
		}
	case FormatMarkdownTable:
		res.Grid = markdownGrid(normalized)
	case FormatDelimitedText:
		res.Grid = delimitedGrid(normalized)
	}

	if res.Grid == nil || res.Grid.RowCount() == 0 {
		res.Grid = nil
		res.Preformatted = normalized
	}
	res.Confidence = scoreConfidence(meta, res.Grid, res.UsedFallback)
	return res
}
