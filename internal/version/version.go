package version

// Version is the release version of amltohex. It is overridden at build time with
// -ldflags "-X github.com/acpitools/amltohex/internal/version.Version=...".
var Version = "0.1.0"
