package config

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	cmtos "github.com/cometbft/cometbft/libs/os"
	"github.com/tessellated-io/workshop/log"
)

// ExpandHomeDir replaces a leading "~" with the current user's home directory
// (ex. ~/.workshop/dataset.yaml => /home/tessellated/.workshop/dataset.yaml).
func ExpandHomeDir(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get user's home directory: %w", err)
	}
	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}

// FileExists reports whether anything exists at filePath.
func FileExists(filePath string) (bool, error) {
	expanded, err := ExpandHomeDir(filePath)
	if err != nil {
		return false, err
	}
	return cmtos.FileExists(expanded), nil
}

// CreateDirectoryIfNeeded makes directory and any missing parents.
func CreateDirectoryIfNeeded(directory string, logger *log.Logger) error {
	expanded, err := ExpandHomeDir(directory)
	if err != nil {
		return err
	}

	exists, err := folderExists(expanded)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return err
	}

	logger.Info("created directory", "directory", directory)
	return nil
}

// SafeWrite writes contents to file unless something is already there.
func SafeWrite(file string, contents []byte, logger *log.Logger) error {
	expanded, err := ExpandHomeDir(file)
	if err != nil {
		return err
	}

	if cmtos.FileExists(expanded) {
		logger.Warn("skipping overwriting existing file", "file", expanded)
		return nil
	}

	if err := cmtos.WriteFile(expanded, contents, 0o644); err != nil {
		return err
	}
	logger.Info("wrote file", "file", expanded)
	return nil
}

func folderExists(folderPath string) (bool, error) {
	fileInfo, err := os.Stat(folderPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fileInfo.IsDir(), nil
}
