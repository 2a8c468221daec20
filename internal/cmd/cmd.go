package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	AppName    = "kairos"
	AppVersion = "(unknown)"
)

type logFn func(s string, args ...interface{})

var info logFn = func(s string, args ...interface{}) {
	fmt.Printf(s+"\n", args...)
}

var errFn logFn = func(s string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
}

func MkDirIfNotExists(p string) error {
	fi, err := os.Stat(p)
	if err != nil && os.IsNotExist(err) {
		err = os.MkdirAll(p, os.ModeDir|os.ModePerm|0700)
	}
	if err != nil {
		return err
	}
	fi, err = os.Stat(p)
	if err != nil {
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("path exists, and is not a folder %s", p)
	}
	return nil
}

func CachePath() string {
	xdgCachePath, _ := os.UserCacheDir()
	appPath := filepath.Join(xdgCachePath, AppName)

	if _, err := os.Stat(appPath); err != nil && errors.Is(err, os.ErrNotExist) {
		if err := MkDirIfNotExists(appPath); err != nil {
			errFn("Error: %s", err)
			return os.TempDir()
		}
	}
	return appPath
}
