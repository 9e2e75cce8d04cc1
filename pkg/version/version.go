package version

import (
	"fmt"
	"runtime"
)

const AppName = "FlagWise"

// Version and BuildDate are overridable at build time:
//
//	go build -ldflags "-X .../pkg/version.Version=1.2.3 -X .../pkg/version.BuildDate=..."
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)

// Info is the payload served by the version endpoint.
type Info struct {
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func GetInfo() Info {
	return Info{
		AppName:   AppName,
		Version:   Version,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
