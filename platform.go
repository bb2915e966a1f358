// FILE: lixenwraith/passarg/platform.go
package passarg

import "runtime"

// platform is the GOOS consulted by descriptor checks. Tests swap it to
// exercise the unsupported path on any host.
var platform = runtime.GOOS

// DescriptorsSupported reports whether fd:N specifications can be resolved
// on the running platform.
func DescriptorsSupported() bool {
	return descriptorsSupportedOn(platform)
}

func descriptorsSupportedOn(goos string) bool {
	switch goos {
	case "windows", "js", "wasip1", "plan9":
		return false
	default:
		return true
	}
}
