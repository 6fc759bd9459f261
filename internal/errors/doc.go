// Package errors provides structured, actionable error messages for the
// whits command line.
//
// Each error has a code that maps to a category, a short message, an
// optional explanation and a hint:
//
//   - W1xx: configuration
//   - W2xx: source documents (W203 is a document entry that is not valid
//     content)
//   - W3xx: rendering
//   - W4xx: writing and publishing output
//   - W5xx: preview server
//   - W6xx: command results
//
// # Usage
//
//	err := errors.New(errors.CodeDocumentContract).
//	    WithFile("pages/index.html.yaml").
//	    WithPath("content[2]").
//	    Wrap(cause)
//
//	errors.PrintError(err)
//	// ERROR W203: Unsupported document content
//	//
//	//   pages/index.html.yaml: content[2]
//	//   ...
//
// Library packages under pkg/ never return these; they use sentinel errors
// that the CLI maps to codes.
package errors
