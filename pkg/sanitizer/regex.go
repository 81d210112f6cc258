package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Markup stripping
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleBlockRegex  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	htmlTagRegex     = regexp.MustCompile(`<[^>]*>`)
	unclosedTagRegex = regexp.MustCompile(`<[/a-zA-Z][^>]*$`)
	allowedTagRegex  = regexp.MustCompile(`(?i)^</?(b|i|em|strong|u|br)\s*/?>$`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Advisory XSS detection
	scriptOpenRegex   = regexp.MustCompile(`(?i)<script\b`)
	scriptProtoRegex  = regexp.MustCompile(`(?i)(javascript|vbscript)\s*:`)
	eventHandlerRegex = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	cssExprRegex      = regexp.MustCompile(`(?i)expression\s*\(`)
	cssURLJSRegex     = regexp.MustCompile(`(?i)url\s*\(\s*['"]?\s*javascript:`)

	// Filename sanitization
	pathTraversalRegex  = regexp.MustCompile(`\.\.[\\/]?`)
	unsafeFilenameRegex = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
)
