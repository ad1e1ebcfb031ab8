// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read once, when the constructor returned by NewFetcher runs,
// and cached. Every Fetch returns a fresh copy of those bytes, so a
// configuration document is parsed from the same input for the whole
// application lifetime even if the file changes on disk.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/app/config.json")()
//	if err != nil {
//	    // file not found, permission denied, directory, larger than MaxSize
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is with ErrPathIsDirectory or ErrFileTooLarge to tell the
// failures apart.
package file
