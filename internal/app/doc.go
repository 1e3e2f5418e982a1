// Package app wires the render pipeline together: it loads the component
// library and frame documents, resolves them, runs border-collapse analysis,
// and writes the export document.
package app
