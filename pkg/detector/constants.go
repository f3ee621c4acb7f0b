package detector

// Framework ids shared by the built-in detectors. Several detectors may
// report the same framework id from different perspectives.
const (
	FrameworkCEF           = "cef"
	FrameworkDotNet        = "dotnet"
	FrameworkWebView2      = "webview2"
	FrameworkWindowsAppSDK = "windowsappsdk"
	FrameworkWinForms      = "winforms"
	FrameworkWinUI3        = "winui3"
	FrameworkWPF           = "wpf"
)
