// Package version хранит сведения о сборке, выставляемые через -ldflags.
package version

import "fmt"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Info возвращает версию, коммит и дату сборки.
func Info() (v, c, d string) { return version, commit, date }

func GetVersion() string { return version }

func GetCommit() string { return commit }

func GetDate() string { return date }

// String форматирует сведения о сборке для логов и вывода --version.
func String() string {
	return fmt.Sprintf("restock version=%s commit=%s date=%s", version, commit, date)
}
