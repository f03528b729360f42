package version

// Version is stamped by the release build with
// -ldflags "-X github.com/stocklens/stocklens/pkg/version.Version=...".
var Version = "v0.1.0-dev"

var GitRef = "HEAD"
