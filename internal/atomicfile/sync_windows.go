//go:build windows

package atomicfile

func syncDir(dir string) error { return nil }
