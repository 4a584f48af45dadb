// Package render writes ranked words as an HTML tag cloud document.
package render
