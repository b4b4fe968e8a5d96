// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package paths locates the folder a program was built from and the "data"
// folder shipped next to it.
//
// From a source tree the package folder is the nearest directory above the
// calling file that holds a go.mod. A deployed binary has no source tree; the
// folder of the running executable is used instead.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	moduleFile = "go.mod"
	dataDir    = "data"
)

var (
	// ErrPackageFolderNotFound is returned when no go.mod exists above the
	// start directory.
	ErrPackageFolderNotFound = errors.New("package folder not found")

	// ErrDataFolderNotFound is returned when the package folder holds no
	// data folder.
	ErrDataFolderNotFound = errors.New("data folder not found")
)

// executable is replaced in tests.
var executable = os.Executable

// PackageFolder returns the module root of the calling source file, or the
// folder of the running executable when the source tree is not available.
func PackageFolder() (string, error) {
	_, file, _, ok := runtime.Caller(1)
	return packageFolder(file, ok)
}

// DataFolder returns the data folder of the calling package.
func DataFolder() (string, error) {
	_, file, _, ok := runtime.Caller(1)
	root, err := packageFolder(file, ok)
	if err != nil {
		return "", err
	}
	return dataFolderIn(root)
}

// PackageFolderFrom walks up from dir to the nearest directory holding go.mod.
func PackageFolderFrom(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("error resolving %s: %w", dir, err)
	}

	for current := abs; ; {
		if isFile(filepath.Join(current, moduleFile)) {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: no %s above %s", ErrPackageFolderNotFound, moduleFile, abs)
		}
		current = parent
	}
}

// DataFolderFrom returns the data folder of the module enclosing dir.
func DataFolderFrom(dir string) (string, error) {
	root, err := PackageFolderFrom(dir)
	if err != nil {
		return "", err
	}
	return dataFolderIn(root)
}

func packageFolder(callerFile string, ok bool) (string, error) {
	if ok && isFile(callerFile) {
		if root, err := PackageFolderFrom(filepath.Dir(callerFile)); err == nil {
			return root, nil
		}
	}
	return executableFolder()
}

func executableFolder() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("error locating executable: %w", err)
	}
	if resolved, evalErr := filepath.EvalSymlinks(exe); evalErr == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func dataFolderIn(root string) (string, error) {
	data := filepath.Join(root, dataDir)
	info, err := os.Stat(data)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrDataFolderNotFound, data)
	}
	return data, nil
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
