package config

import "strings"

// AppVersion is the version of the service.
var AppVersion = "1.0.0"

// AppName is the name of the service.
const AppName = "Tone"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// DefaultListenAddr is the loopback address the analysis server binds to
// unless overridden by config or flag.
const DefaultListenAddr = "127.0.0.1:8490"

// MaxUploadBytes caps the size of an uploaded photo.
const MaxUploadBytes = 10 << 20 // 10MB

// ProcessImageMaxWidth is the width large uploads are downscaled to before
// analysis. Keeps memory bounded for 12MP+ phone photos.
const ProcessImageMaxWidth = 1280
