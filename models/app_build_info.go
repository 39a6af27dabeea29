// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build metadata injected with -ldflags and shown on the
// profile tab.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]; empty values are reported as "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
