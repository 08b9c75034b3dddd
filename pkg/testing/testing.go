package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// tests share the project root as working directory, so logs/ and any
	// sqlite files land in one place
	//
	//   in some_test.go,
	//   import (
	//     _ "liyu1981.xyz/battlogger/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)           // here runtime will return current file path
	dir := path.Join(path.Dir(filename), "..", "..") // and by double .. we will go to the project root
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}
