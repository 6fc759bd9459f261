package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// Error codes used across the CLI.
const (
	CodeConfigLoad    = "W101"
	CodeConfigInvalid = "W102"
	CodeConfigSave    = "W103"

	CodeDocumentRead     = "W201"
	CodeDocumentDecode   = "W202"
	CodeDocumentContract = "W203"
	CodeDocumentFormat   = "W204"

	CodeRenderFailed    = "W301"
	CodeRenderConstruct = "W302"

	CodeOutputWrite   = "W401"
	CodeOutputPublish = "W402"

	CodeServerStart    = "W501"
	CodeServerNotFound = "W502"

	CodeBuildFailed = "W601"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Configuration (W1xx)

	CodeConfigLoad: {
		Category:   CategoryConfig,
		Message:    "Failed to load configuration",
		Detail:     "whits.toml, the user configuration file or a WHITS_ environment variable could not be read.",
		Suggestion: "Check the file for TOML syntax errors or run 'whits init' to create a fresh one.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A configuration value is missing or out of range.",
	},
	CodeConfigSave: {
		Category: CategoryConfig,
		Message:  "Failed to write configuration",
	},

	// Documents (W2xx)

	CodeDocumentRead: {
		Category: CategoryDocument,
		Message:  "Cannot read document",
	},
	CodeDocumentDecode: {
		Category:   CategoryDocument,
		Message:    "Cannot decode document",
		Detail:     "The file is not valid YAML, JSON, TOML, msgpack or XML.",
		Suggestion: "Validate the file with a linter for its format.",
	},
	CodeDocumentContract: {
		Category:   CategoryDocument,
		Message:    "Unsupported document content",
		Detail:     "A document entry is not text, raw markup or an element description.",
		Suggestion: "Each entry must be a string or a map with exactly one of: tag, text, raw, comment, markdown, html, svg, xml, code, script, style.",
	},
	CodeDocumentFormat: {
		Category:   CategoryDocument,
		Message:    "Unsupported document format",
		Suggestion: "Use one of the extensions .yaml, .yml, .json, .toml, .msgpack or .xml.",
	},

	// Rendering (W3xx)

	CodeRenderFailed: {
		Category: CategoryRender,
		Message:  "Render failed",
	},
	CodeRenderConstruct: {
		Category:   CategoryRender,
		Message:    "Invalid element",
		Detail:     "Void elements cannot have children and compound tags need at least two selectors.",
		Suggestion: "Remove the children of the void element or add another selector to the tag list.",
	},

	// Output (W4xx)

	CodeOutputWrite: {
		Category: CategoryOutput,
		Message:  "Failed to write output",
	},
	CodeOutputPublish: {
		Category:   CategoryOutput,
		Message:    "Failed to publish output",
		Suggestion: "Check the bucket name, region and credentials in the [publish] section.",
	},

	// Preview server (W5xx)

	CodeServerStart: {
		Category:   CategoryServer,
		Message:    "Preview server failed",
		Suggestion: "Another process may be using the port. Try 'whits serve --port 0'.",
	},
	CodeServerNotFound: {
		Category: CategoryServer,
		Message:  "No document for path",
	},

	// CLI (W6xx)

	CodeBuildFailed: {
		Category: CategoryCLI,
		Message:  "Build finished with errors",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
