// Package document decodes page descriptions written in YAML, JSON, TOML
// or msgpack, and whole XML or SVG files, into whits templates.
//
// A description is a map:
//
//	doctype: "<!DOCTYPE html>"   # or false to omit
//	root: html                   # "" renders a fragment
//	rootAttributes: {lang: en}
//	content:
//	  - tag: head
//	    children:
//	      - tag: title
//	        children: [Hello]
//	  - tag: body
//	    children:
//	      - tag: [main.page, section]
//	        children:
//	          - markdown: "# Welcome"
//	          - code: {lang: go, source: "package main"}
//
// Content entries are plain strings (text) or maps with exactly one of the
// keys tag, text, raw, comment, markdown, html, svg, xml, code, script and
// style. Anything else is reported as a W203 error naming the entry path.
package document
