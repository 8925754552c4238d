package cli

import (
	"fmt"
	"runtime"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// versionTemplate renders --version with build details
func versionTemplate() string {
	return fmt.Sprintf(`{{.Name}} {{.Version}}
  Commit:     %s
  Built:      %s
  Go version: %s
  OS/Arch:    %s/%s
`, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
