package odpi

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

// getODPILibrary returns the appropriate library name for the current platform
func getODPILibrary() string {
	switch runtime.GOOS {
	case "darwin":
		return "libodpic.dylib"
	case "windows":
		return "odpic.dll"
	default: // linux, *bsd, etc
		return "libodpic.so"
	}
}

// Library represents a loaded ODPI-C shared library
type Library struct {
	handle uintptr
}

// LoadLibrary loads the ODPI-C shared library
func LoadLibrary() (*Library, error) {
	libNames := []string{
		getODPILibrary(), // System default
	}

	// Check environment variable for custom location
	if libDir := os.Getenv("ODPI_LIB_DIR"); libDir != "" {
		libNames = append([]string{
			filepath.Join(libDir, getODPILibrary()),
		}, libNames...)
	}

	var lastErr error
	for _, libName := range libNames {
		handle, err := purego.Dlopen(libName, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return &Library{handle: handle}, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed to load ODPI-C library from any location: %w", lastErr)
}

// Close closes the loaded library
func (l *Library) Close() error {
	if l.handle != 0 {
		return purego.Dlclose(l.handle)
	}
	return nil
}

// RegisterFunc registers a function from the library
func (l *Library) RegisterFunc(fn interface{}, name string) error {
	purego.RegisterLibFunc(fn, l.handle, name)
	return nil
}
