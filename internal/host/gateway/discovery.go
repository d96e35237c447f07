package gateway

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ScriptAPIPaths returns the candidate locations of the host's scripting
// API for the current platform, honoring the RESOLVE_SCRIPT_API override.
// The helper process needs one of these on its module path.
func ScriptAPIPaths() []string {
	if override := os.Getenv("RESOLVE_SCRIPT_API"); override != "" {
		return []string{override}
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Library/Application Support/Blackmagic Design/DaVinci Resolve/Developer/Scripting",
		}
	case "windows":
		programData := os.Getenv("PROGRAMDATA")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return []string{
			filepath.Join(programData, "Blackmagic Design", "DaVinci Resolve", "Support", "Developer", "Scripting"),
		}
	default:
		return []string{
			"/opt/resolve/Developer/Scripting",
			"/home/resolve/Developer/Scripting",
		}
	}
}

// ScriptLibPaths returns the candidate locations of the scripting shared
// library, honoring the RESOLVE_SCRIPT_LIB override.
func ScriptLibPaths() []string {
	if override := os.Getenv("RESOLVE_SCRIPT_LIB"); override != "" {
		return []string{override}
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Applications/DaVinci Resolve/DaVinci Resolve.app/Contents/Libraries/Fusion/fusionscript.so",
		}
	case "windows":
		return []string{
			`C:\Program Files\Blackmagic Design\DaVinci Resolve\fusionscript.dll`,
		}
	default:
		return []string{
			"/opt/resolve/libs/Fusion/fusionscript.so",
			"/home/resolve/libs/Fusion/fusionscript.so",
		}
	}
}

// InstallHint describes how to get the scripting helper running. Appended
// to connection errors so a failed dial is self-explanatory.
func InstallHint() string {
	paths := ScriptAPIPaths()
	return fmt.Sprintf("is the host application running with the scripting helper started? scripting API expected under %s", paths[0])
}
