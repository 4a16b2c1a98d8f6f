// Command gateway serves the system and infra modules of the admin API.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-admin-gateway/internal/app"
	"github.com/MKhiriev/go-admin-gateway/internal/module"
	"github.com/MKhiriev/go-admin-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	os.Exit(app.Run(os.Args[1:], app.Options{
		Role:      "daoyi-gateway",
		BuildInfo: info,
		Modules:   module.Core,
		Stderr:    os.Stderr,
	}))
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
