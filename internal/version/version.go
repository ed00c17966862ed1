package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/modrun-cli/modrun/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/modrun-cli/modrun/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/modrun-cli/modrun/internal/version.Date={{.Date}}
)
