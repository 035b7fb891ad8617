package respath

import "embed"

//go:embed topics/*.md
var topicFiles embed.FS
