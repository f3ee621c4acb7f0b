// Package all imports all built-in detectors for side-effect registration.
// Usage: _ "github.com/specvital/fwdetect/pkg/detectors/all"
package all

import (
	_ "github.com/specvital/fwdetect/pkg/detectors/cef"
	_ "github.com/specvital/fwdetect/pkg/detectors/dotnet"
	_ "github.com/specvital/fwdetect/pkg/detectors/webview2"
	_ "github.com/specvital/fwdetect/pkg/detectors/windowsappsdk"
	_ "github.com/specvital/fwdetect/pkg/detectors/winforms"
	_ "github.com/specvital/fwdetect/pkg/detectors/winui3"
	_ "github.com/specvital/fwdetect/pkg/detectors/wpf"
)
