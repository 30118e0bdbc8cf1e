package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot locates the app root by walking up from the working directory until
// it finds the drop tables (in the root or under ztable/) or the
// input/drop_chance directory. Supports running from the repo root, from cmd/*,
// or from inside the table directory.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := cwd
	for i := 0; i < 10; i++ {
		for _, marker := range []string{
			"DropTable.json",
			filepath.Join("ztable", "DropTable.json"),
			filepath.Join("input", "drop_chance"),
		} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("cannot find app root from %q (expected DropTable.json, ztable/DropTable.json, or input/drop_chance in this dir or any parent)", cwd)
}
